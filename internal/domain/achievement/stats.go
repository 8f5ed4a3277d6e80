package achievement

import (
	"sort"

	"github.com/peladahub/pelada/internal/domain/halloffame"
	"github.com/peladahub/pelada/internal/domain/match"
)

// Aggregate walks every finished event in chronological order and builds the
// player's career record. The clean-sheet streak runs across events, so a
// player can finish one pelada on two clean games and complete the streak at
// the start of the next.
func Aggregate(playerID string, matches []match.Match, titles []halloffame.Entry) CareerStats {
	stats := CareerStats{
		PlayerID:      playerID,
		MonthlyTitles: map[halloffame.Category]int{},
	}

	ordered := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == match.StatusFinished {
			ordered = append(ordered, m)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	streak := 0
	for _, m := range ordered {
		team, ok := m.TeamOf(playerID)
		if !ok {
			continue
		}
		stats.Matches++

		standings := match.ComputeStandings(m)
		if len(standings) > 0 && standings[0].TeamID == team.ID {
			stats.Titles++
		}

		for _, g := range orderedGames(m) {
			if g.Status != match.GameFinished || g.TieBreak {
				continue
			}
			home := g.HomeTeamID == team.ID
			away := g.AwayTeamID == team.ID
			if !home && !away {
				continue
			}

			teamScore, oppScore := g.HomeScore, g.AwayScore
			if away {
				teamScore, oppScore = oppScore, teamScore
			}
			if teamScore > oppScore {
				stats.Wins++
			}

			// Clean sheets credit everyone on the team, attackers
			// included; only the rating formulas weigh them by position.
			if oppScore == 0 {
				stats.CleanSheets++
				streak++
				if streak == 3 {
					stats.CleanStreaks++
					streak = 0
				}
			} else {
				streak = 0
			}

			goals, assists := 0, 0
			for _, goal := range m.GoalsByGame(g.ID) {
				if goal.ScorerID == playerID {
					goals++
				}
				if goal.AssistID == playerID {
					assists++
				}
			}
			stats.Goals += goals
			stats.Assists += assists
			if goals >= 3 {
				stats.HatTricks++
			}
			if assists >= 3 {
				stats.AssistTricks++
			}
		}
	}

	for _, t := range titles {
		if t.PlayerID == playerID {
			stats.MonthlyTitles[t.Category]++
		}
	}

	return stats
}

func orderedGames(m match.Match) []match.Game {
	games := make([]match.Game, len(m.Games))
	copy(games, m.Games)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Sequence < games[j].Sequence
	})
	return games
}
