package draft

import (
	"fmt"
	"testing"

	"github.com/peladahub/pelada/internal/domain/player"
)

func linePlayer(id string, pos player.Position, style player.PlayStyle, overall int) player.Player {
	return player.Player{
		ID:        id,
		Name:      id,
		Position:  pos,
		PlayStyle: style,
		Overall:   overall,
	}
}

func TestSnakeDraftFairness(t *testing.T) {
	t.Parallel()

	const numTeams = 3
	pool := make([]player.Player, 0, 8)
	for i := 0; i < 8; i++ {
		pool = append(pool, linePlayer(
			fmt.Sprintf("def-%d", i),
			player.PositionDefender,
			player.StyleAnchor,
			90-i,
		))
	}

	teams, err := BuildTeams(pool, numTeams)
	if err != nil {
		t.Fatalf("build teams: %v", err)
	}

	// 8 defenders over 3 teams: no team may take more than ceil(8/3) = 3.
	for _, team := range teams {
		if len(team.Players) > 3 {
			t.Fatalf("team %s received %d defenders, max 3", team.Name, len(team.Players))
		}
	}

	// First full cycle must alternate direction: picks 90,89,88 then
	// 87,86,85 reversed, so team 0 holds 90 and 85.
	first := teams[0]
	if first.Players[0].Overall != 90 {
		t.Fatalf("team 1 top pick overall = %d, want 90", first.Players[0].Overall)
	}
	if first.Players[1].Overall != 85 {
		t.Fatalf("team 1 second pick overall = %d, want 85 (snake return)", first.Players[1].Overall)
	}
}

func TestGreedyAntiStacking(t *testing.T) {
	t.Parallel()

	const numTeams = 3
	pool := make([]player.Player, 0, 12)
	for i := 0; i < 12; i++ {
		pool = append(pool, linePlayer(
			fmt.Sprintf("mid-%d", i),
			player.PositionMidfielder,
			player.PlayStyle(fmt.Sprintf("STYLE_%d", i)), // unique styles, no style pressure
			88-2*i,
		))
	}

	teams, err := BuildTeams(pool, numTeams)
	if err != nil {
		t.Fatalf("build teams: %v", err)
	}

	totals := make([]int, 0, numTeams)
	minTotal := 0
	for i, team := range teams {
		total := 0
		for _, p := range team.Players {
			total += p.Overall
		}
		totals = append(totals, total)
		if i == 0 || total < minTotal {
			minTotal = total
		}
	}
	for i, total := range totals {
		if total > minTotal+stackingLimit {
			t.Fatalf("team %d total %d exceeds min %d by more than %d", i, total, minTotal, stackingLimit)
		}
	}
}

func TestStyleDiversitySpreadsDuplicates(t *testing.T) {
	t.Parallel()

	// Three equal-rated finishers over three teams must land one apiece:
	// the stacking guard keeps totals close, so the style penalty decides.
	pool := []player.Player{
		linePlayer("fwd-1", player.PositionForward, player.StyleFinisher, 70),
		linePlayer("fwd-2", player.PositionForward, player.StyleFinisher, 70),
		linePlayer("fwd-3", player.PositionForward, player.StyleFinisher, 70),
	}

	teams, err := BuildTeams(pool, 3)
	if err != nil {
		t.Fatalf("build teams: %v", err)
	}
	for _, team := range teams {
		if got := team.StyleCounts[player.StyleFinisher]; got != 1 {
			t.Fatalf("team %s has %d finishers, want 1", team.Name, got)
		}
	}
}

func TestGoalkeepersRoundRobinAndExcludedFromAverage(t *testing.T) {
	t.Parallel()

	pool := []player.Player{
		linePlayer("gk-1", player.PositionGoalkeeper, player.StyleSweeper, 99),
		linePlayer("gk-2", player.PositionGoalkeeper, player.StyleSweeper, 1),
		linePlayer("mid-1", player.PositionMidfielder, player.StyleEngine, 60),
		linePlayer("mid-2", player.PositionMidfielder, player.StyleEngine, 60),
		linePlayer("fwd-1", player.PositionForward, player.StyleFinisher, 60),
		linePlayer("fwd-2", player.PositionForward, player.StyleFinisher, 60),
	}

	teams, err := BuildTeams(pool, 2)
	if err != nil {
		t.Fatalf("build teams: %v", err)
	}

	if !teams[0].HasPlayer("gk-1") || !teams[1].HasPlayer("gk-2") {
		t.Fatalf("goalkeepers not distributed round-robin: %+v", teams)
	}
	for _, team := range teams {
		if team.Players[0].Position != player.PositionGoalkeeper {
			t.Fatalf("team %s roster must lead with the goalkeeper", team.Name)
		}
		// Wildly uneven goalkeeper ratings must not move the average.
		if team.AvgOverall != 60 {
			t.Fatalf("team %s avg overall = %f, want 60", team.Name, team.AvgOverall)
		}
	}
}

func TestRosterOrderedByPositionThenOverall(t *testing.T) {
	t.Parallel()

	pool := []player.Player{
		linePlayer("fwd", player.PositionForward, player.StyleFinisher, 90),
		linePlayer("def", player.PositionDefender, player.StyleAnchor, 50),
		linePlayer("gk", player.PositionGoalkeeper, player.StyleSweeper, 70),
		linePlayer("mid", player.PositionMidfielder, player.StyleEngine, 80),
	}

	teams, err := BuildTeams(pool, 1)
	if err != nil {
		t.Fatalf("build teams: %v", err)
	}
	got := make([]string, 0, 4)
	for _, p := range teams[0].Players {
		got = append(got, p.ID)
	}
	want := []string{"gk", "def", "mid", "fwd"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("roster order %v, want %v", got, want)
		}
	}
}
