package rating

import (
	"math"
	"testing"

	"github.com/peladahub/pelada/internal/domain/player"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatchDeltasScorelessForwardOnLastPlaceTeam(t *testing.T) {
	t.Parallel()

	totals := MatchTotals{
		Games:         2,
		Losses:        2,
		GoalsConceded: 3,
		LastPlace:     true,
	}
	d := MatchDeltas(player.PositionForward, totals)

	// pace: 2 losses at -0.2, minus the forward pace weight for last place.
	if !almostEqual(d.Pace, -0.6) {
		t.Errorf("pace delta = %v, want -0.6", d.Pace)
	}
	// shooting: -0.60 position weight, -0.2 scoreless penalty.
	if !almostEqual(d.Shooting, -0.8) {
		t.Errorf("shooting delta = %v, want -0.8", d.Shooting)
	}
	// passing: -0.15 position weight, -0.1 scoreless penalty.
	if !almostEqual(d.Passing, -0.25) {
		t.Errorf("passing delta = %v, want -0.25", d.Passing)
	}
	// defending: -0.05 position weight, 3 conceded at -0.2.
	if !almostEqual(d.Defending, -0.65) {
		t.Errorf("defending delta = %v, want -0.65", d.Defending)
	}
}

func TestMatchDeltasChampionGoalkeeper(t *testing.T) {
	t.Parallel()

	totals := MatchTotals{
		Games:       3,
		Wins:        3,
		CleanSheets: 2,
		Champion:    true,
	}
	d := MatchDeltas(player.PositionGoalkeeper, totals)

	if !almostEqual(d.Pace, 3*0.3+0.20) {
		t.Errorf("pace delta = %v, want %v", d.Pace, 3*0.3+0.20)
	}
	if !almostEqual(d.Defending, 0.60+2*0.5) {
		t.Errorf("defending delta = %v, want %v", d.Defending, 0.60+2*0.5)
	}
	// Scoreless penalty still applies to a keeper.
	if !almostEqual(d.Shooting, 0.05-0.1) {
		t.Errorf("shooting delta = %v, want %v", d.Shooting, 0.05-0.1)
	}
	if !almostEqual(d.Passing, 0.15-0.1) {
		t.Errorf("passing delta = %v, want %v", d.Passing, 0.15-0.1)
	}
}

func TestMatchDeltasScorelessSkippedWithoutGames(t *testing.T) {
	t.Parallel()

	d := MatchDeltas(player.PositionMidfielder, MatchTotals{})
	if !almostEqual(d.Passing, 0) || !almostEqual(d.Shooting, 0) {
		t.Errorf("idle player got deltas %+v, want zero", d)
	}
}

func TestSettleGainAndReset(t *testing.T) {
	t.Parallel()

	p := player.Player{
		Position:   player.PositionMidfielder,
		Attributes: player.Attributes{Pace: 70, Shooting: 60, Passing: 75, Defending: 55},
		Accumulators: player.Accumulators{
			Pace:     2.0,  // gain round(0.5) = 1
			Shooting: 1.9,  // gain round(0.475) = 0
			Passing:  -2.2, // gain round(-0.55) = -1
		},
	}
	p.Overall = player.RoundedOverall(p.Position, p.Attributes)

	s := Settle(p)

	if s.Attributes.Pace != 71 {
		t.Errorf("pace = %d, want 71", s.Attributes.Pace)
	}
	if s.Attributes.Shooting != 60 {
		t.Errorf("shooting = %d, want 60", s.Attributes.Shooting)
	}
	if s.Attributes.Passing != 74 {
		t.Errorf("passing = %d, want 74", s.Attributes.Passing)
	}
	if s.Attributes.Defending != 55 {
		t.Errorf("defending = %d, want 55", s.Attributes.Defending)
	}
	if !s.Changed {
		t.Error("settlement with attribute movement should report Changed")
	}
}

func TestSettleOverallSwingClamp(t *testing.T) {
	t.Parallel()

	p := player.Player{
		Position:     player.PositionForward,
		Attributes:   player.Attributes{Pace: 80, Shooting: 70, Passing: 60, Defending: 50},
		Accumulators: player.Accumulators{Pace: 40, Shooting: 40, Passing: 40, Defending: 40},
	}
	p.Overall = player.RoundedOverall(p.Position, p.Attributes)

	s := Settle(p)

	// Attributes each gained 10, but the published overall moves at most 2.
	if s.Attributes.Pace != 90 || s.Attributes.Shooting != 80 {
		t.Errorf("attributes = %+v, want +10 on each", s.Attributes)
	}
	if s.Overall != p.Overall+2 {
		t.Errorf("overall = %d, want %d", s.Overall, p.Overall+2)
	}

	p.Accumulators = player.Accumulators{Pace: -40, Shooting: -40, Passing: -40, Defending: -40}
	s = Settle(p)
	if s.Overall != p.Overall-2 {
		t.Errorf("overall = %d, want %d", s.Overall, p.Overall-2)
	}
}

func TestSettleAttributeCeiling(t *testing.T) {
	t.Parallel()

	p := player.Player{
		Position:     player.PositionDefender,
		Attributes:   player.Attributes{Pace: 95, Shooting: 95, Passing: 95, Defending: 95},
		Accumulators: player.Accumulators{Pace: 40, Shooting: 40, Passing: 40, Defending: 40},
	}
	p.Overall = 95

	s := Settle(p)
	if s.Attributes.Pace != 99 || s.Attributes.Defending != 99 {
		t.Errorf("attributes = %+v, want each capped at 99", s.Attributes)
	}
}

func TestSettleNoMovement(t *testing.T) {
	t.Parallel()

	p := player.Player{
		Position:   player.PositionGoalkeeper,
		Attributes: player.Attributes{Pace: 60, Shooting: 40, Passing: 55, Defending: 85},
	}
	p.Overall = player.RoundedOverall(p.Position, p.Attributes)

	if s := Settle(p); s.Changed {
		t.Errorf("zero accumulators produced movement: %+v", s)
	}
}
