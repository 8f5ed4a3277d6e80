package match

import "sort"

// Standing is one derived points-table row. Standings are never persisted;
// they are recomputed from finished round-robin games on demand.
type Standing struct {
	TeamID       string
	Points       int
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
}

const (
	pointsWin  = 3
	pointsDraw = 1
)

// ComputeStandings builds the points table from finished PHASE_1 and PHASE_2
// games. Knockout games never contribute. Rows are sorted by points, wins,
// goal difference, then goals for, all descending; ties beyond that keep the
// team declaration order.
func ComputeStandings(m Match) []Standing {
	index := make(map[string]*Standing, len(m.Teams))
	rows := make([]*Standing, 0, len(m.Teams))
	for _, t := range m.Teams {
		row := &Standing{TeamID: t.ID}
		index[t.ID] = row
		rows = append(rows, row)
	}

	for _, g := range m.Games {
		if g.Status != GameFinished || !g.Phase.CountsForStandings() || g.TieBreak {
			continue
		}
		home, okHome := index[g.HomeTeamID]
		away, okAway := index[g.AwayTeamID]
		if !okHome || !okAway {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += g.HomeScore
		home.GoalsAgainst += g.AwayScore
		away.GoalsFor += g.AwayScore
		away.GoalsAgainst += g.HomeScore

		switch {
		case g.HomeScore > g.AwayScore:
			home.Wins++
			home.Points += pointsWin
			away.Losses++
		case g.AwayScore > g.HomeScore:
			away.Wins++
			away.Points += pointsWin
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points += pointsDraw
			away.Points += pointsDraw
		}
	}

	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		row.GoalDiff = row.GoalsFor - row.GoalsAgainst
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		if out[i].GoalDiff != out[j].GoalDiff {
			return out[i].GoalDiff > out[j].GoalDiff
		}
		return out[i].GoalsFor > out[j].GoalsFor
	})

	return out
}
