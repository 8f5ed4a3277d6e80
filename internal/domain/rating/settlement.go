// Package rating turns match performance into attribute movement. Deltas
// accumulate as unbounded floats per player and are settled into integer
// attributes once a month.
package rating

import (
	"math"

	"github.com/peladahub/pelada/internal/domain/player"
)

// MatchTotals aggregates one player's performance across every game of a
// single finished event.
type MatchTotals struct {
	Games         int
	Wins          int
	Losses        int
	Goals         int
	Assists       int
	CleanSheets   int
	GoalsConceded int
	Champion      bool
	LastPlace     bool
}

// Deltas is the fractional contribution of one event to a player's
// accumulators.
type Deltas struct {
	Pace      float64
	Shooting  float64
	Passing   float64
	Defending float64
}

var cleanSheetBonus = map[player.Position]float64{
	player.PositionGoalkeeper: 0.5,
	player.PositionDefender:   0.3,
	player.PositionMidfielder: 0.2,
	player.PositionForward:    0.1,
}

var goalBonus = map[player.Position]float64{
	player.PositionGoalkeeper: 0.1,
	player.PositionDefender:   0.2,
	player.PositionMidfielder: 0.3,
	player.PositionForward:    0.5,
}

var assistBonus = map[player.Position]float64{
	player.PositionGoalkeeper: 0.1,
	player.PositionDefender:   0.2,
	player.PositionMidfielder: 0.5,
	player.PositionForward:    0.3,
}

// MatchDeltas computes the accumulator contribution of one finished event for
// a player in the given position. No clamping happens here; values stay
// fractional until the monthly settlement.
func MatchDeltas(pos player.Position, totals MatchTotals) Deltas {
	var d Deltas

	d.Pace += float64(totals.Wins)*0.3 + float64(totals.Losses)*-0.2

	w := player.WeightsFor(pos)
	if totals.Champion {
		d.Pace += w.Pace
		d.Shooting += w.Shooting
		d.Passing += w.Passing
		d.Defending += w.Defending
	}
	if totals.LastPlace {
		d.Pace -= w.Pace
		d.Shooting -= w.Shooting
		d.Passing -= w.Passing
		d.Defending -= w.Defending
	}

	d.Defending += float64(totals.CleanSheets) * cleanSheetBonus[pos]
	d.Defending += float64(totals.GoalsConceded) * -0.2
	d.Shooting += float64(totals.Goals) * goalBonus[pos]
	d.Passing += float64(totals.Assists) * assistBonus[pos]

	if totals.Goals == 0 && totals.Assists == 0 && totals.Games > 0 {
		switch pos {
		case player.PositionMidfielder:
			d.Passing -= 0.2
			d.Shooting -= 0.1
		case player.PositionForward:
			d.Shooting -= 0.2
			d.Passing -= 0.1
		default:
			d.Passing -= 0.1
			d.Shooting -= 0.1
		}
	}

	return d
}

// Settlement is the outcome of converting a player's accumulators into
// permanent attribute changes.
type Settlement struct {
	Attributes player.Attributes
	Overall    int
	Changed    bool
}

// maxMonthlySwing caps how far a single settlement may move the published
// overall, whatever the raw attribute math says.
const maxMonthlySwing = 2

// Settle converts the accumulators into new attributes and a new overall.
// Each attribute moves by round(accumulator/4) and is clamped to [1,99]; the
// resulting overall is additionally held within maxMonthlySwing of the
// current one. The caller persists the result and resets the accumulators.
func Settle(p player.Player) Settlement {
	gain := func(acc float64) int { return int(math.Round(acc / 4)) }

	attrs := player.Attributes{
		Pace:      player.ClampAttribute(p.Attributes.Pace + gain(p.Accumulators.Pace)),
		Shooting:  player.ClampAttribute(p.Attributes.Shooting + gain(p.Accumulators.Shooting)),
		Passing:   player.ClampAttribute(p.Attributes.Passing + gain(p.Accumulators.Passing)),
		Defending: player.ClampAttribute(p.Attributes.Defending + gain(p.Accumulators.Defending)),
	}

	newOverall := player.RoundedOverall(p.Position, attrs)
	if newOverall > p.Overall+maxMonthlySwing {
		newOverall = p.Overall + maxMonthlySwing
	}
	if newOverall < p.Overall-maxMonthlySwing {
		newOverall = p.Overall - maxMonthlySwing
	}

	return Settlement{
		Attributes: attrs,
		Overall:    newOverall,
		Changed:    attrs != p.Attributes || newOverall != p.Overall,
	}
}
