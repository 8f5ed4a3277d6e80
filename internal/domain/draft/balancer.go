// Package draft partitions a selected player pool into balanced teams.
package draft

import (
	"fmt"
	"sort"

	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
)

const (
	// stackingLimit is the hard cap on how far a team's running overall
	// total may drift above the weakest team's before the guard kicks in.
	stackingLimit = 15
	// stackingPenalty makes an over-stacked team effectively unpickable
	// while any alternative satisfies the limit.
	stackingPenalty = 1000
	// stylePenalty is charged once per teammate already sharing the
	// candidate's play style.
	stylePenalty = 25
)

func positionRank(p player.Position) int {
	switch p {
	case player.PositionGoalkeeper:
		return 0
	case player.PositionDefender:
		return 1
	case player.PositionMidfielder:
		return 2
	case player.PositionForward:
		return 3
	default:
		return 4
	}
}

// BuildTeams splits the pool into numTeams balanced rosters. Defenders are
// distributed by snake draft, the remaining line players greedily against
// running totals, and goalkeepers round-robin. Callers validate pool size
// before invoking; the balancer itself performs no minimum-size checks.
func BuildTeams(pool []player.Player, numTeams int) ([]match.Team, error) {
	if numTeams <= 0 {
		return nil, fmt.Errorf("team count must be positive, got %d", numTeams)
	}

	var goalkeepers, defenders, rest []player.Player
	for _, p := range pool {
		switch p.Position {
		case player.PositionGoalkeeper:
			goalkeepers = append(goalkeepers, p)
		case player.PositionDefender:
			defenders = append(defenders, p)
		default:
			rest = append(rest, p)
		}
	}

	rosters := make([][]player.Player, numTeams)
	totals := make([]int, numTeams)

	// Snake draft: direction flips every full pass so the strongest picks
	// don't pile onto team 0.
	sort.SliceStable(defenders, func(i, j int) bool {
		return defenders[i].Overall > defenders[j].Overall
	})
	for index, p := range defenders {
		cycle := index / numTeams
		slot := index % numTeams
		team := slot
		if cycle%2 == 1 {
			team = numTeams - 1 - slot
		}
		rosters[team] = append(rosters[team], p)
		totals[team] += p.Overall
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Overall > rest[j].Overall
	})
	for _, p := range rest {
		best := 0
		bestScore := 0
		for team := 0; team < numTeams; team++ {
			score := totals[team] + assignmentPenalty(rosters[team], totals, team, p)
			if team == 0 || score < bestScore {
				best = team
				bestScore = score
			}
		}
		rosters[best] = append(rosters[best], p)
		totals[best] += p.Overall
	}

	// Goalkeepers never influence balance scoring or the published average.
	for i, gk := range goalkeepers {
		team := i % numTeams
		rosters[team] = append([]player.Player{gk}, rosters[team]...)
	}

	teams := make([]match.Team, 0, numTeams)
	for i, roster := range rosters {
		sortRoster(roster)
		teams = append(teams, match.Team{
			Name:        fmt.Sprintf("Team %d", i+1),
			Players:     roster,
			AvgOverall:  lineAverage(roster),
			StyleCounts: styleHistogram(roster),
		})
	}

	return teams, nil
}

// RecalcTeam re-derives the roster order, published average and style
// histogram after a manual roster edit.
func RecalcTeam(t *match.Team) {
	sortRoster(t.Players)
	t.AvgOverall = lineAverage(t.Players)
	t.StyleCounts = styleHistogram(t.Players)
}

func assignmentPenalty(roster []player.Player, totals []int, team int, candidate player.Player) int {
	penalty := 0

	minTotal := totals[0]
	for _, total := range totals[1:] {
		if total < minTotal {
			minTotal = total
		}
	}
	if totals[team]+candidate.Overall > minTotal+stackingLimit {
		penalty += stackingPenalty
	}

	if candidate.PlayStyle != player.StyleUnset {
		for _, teammate := range roster {
			if teammate.PlayStyle == candidate.PlayStyle {
				penalty += stylePenalty
			}
		}
	}

	return penalty
}

func sortRoster(roster []player.Player) {
	sort.SliceStable(roster, func(i, j int) bool {
		oi, oj := positionRank(roster[i].Position), positionRank(roster[j].Position)
		if oi != oj {
			return oi < oj
		}
		return roster[i].Overall > roster[j].Overall
	})
}

func lineAverage(roster []player.Player) float64 {
	sum, count := 0, 0
	for _, p := range roster {
		if p.Position == player.PositionGoalkeeper {
			continue
		}
		sum += p.Overall
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func styleHistogram(roster []player.Player) map[player.PlayStyle]int {
	out := make(map[player.PlayStyle]int)
	for _, p := range roster {
		if p.PlayStyle == player.StyleUnset {
			continue
		}
		out[p.PlayStyle]++
	}
	return out
}
