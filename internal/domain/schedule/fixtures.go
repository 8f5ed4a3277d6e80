// Package schedule generates the ordered game list for an event.
package schedule

import (
	"fmt"

	"github.com/peladahub/pelada/internal/domain/match"
)

type pairing struct {
	home, away int
}

// Triangular plays two full round-robin legs; there is no knockout stage.
var triangularPairings = []pairing{
	{0, 1}, {1, 2}, {2, 0},
	{0, 1}, {1, 2}, {2, 0},
}

// Quadrangular plays a single round robin in three rounds of two concurrent
// games.
var quadrangularPairings = []pairing{
	{0, 1}, {2, 3},
	{0, 2}, {1, 3},
	{0, 3}, {1, 2},
}

// BuildGames produces the full fixture list for the tournament type over the
// given team ids, with sequence numbers strictly increasing from 1. For the
// Quadrangular format the knockout games are created as TBD placeholders,
// resolved later by the engine once the preceding phase completes.
func BuildGames(matchType match.Type, teamIDs []string) ([]match.Game, error) {
	if err := matchType.Validate(); err != nil {
		return nil, err
	}
	if len(teamIDs) != matchType.TeamCount() {
		return nil, fmt.Errorf("%s requires %d teams, got %d",
			matchType, matchType.TeamCount(), len(teamIDs))
	}

	sequence := 0
	next := func(home, away string, phase match.Phase) match.Game {
		sequence++
		return match.Game{
			HomeTeamID: home,
			AwayTeamID: away,
			Status:     match.GameWaiting,
			Phase:      phase,
			Sequence:   sequence,
		}
	}

	var games []match.Game
	switch matchType {
	case match.TypeTriangular:
		for _, p := range triangularPairings {
			games = append(games, next(teamIDs[p.home], teamIDs[p.away], match.PhaseOne))
		}
	case match.TypeQuadrangular:
		for _, p := range quadrangularPairings {
			games = append(games, next(teamIDs[p.home], teamIDs[p.away], match.PhaseOne))
		}
		// Semifinal pairings (1st vs 4th, 2nd vs 3rd) and the medal games
		// depend on standings that do not exist yet.
		games = append(games,
			next(match.TeamTBD, match.TeamTBD, match.PhaseTwo),
			next(match.TeamTBD, match.TeamTBD, match.PhaseTwo),
			next(match.TeamTBD, match.TeamTBD, match.PhaseThirdPlace),
			next(match.TeamTBD, match.TeamTBD, match.PhaseFinal),
		)
	}

	return games, nil
}

// SeedPhaseTwo writes the semifinal pairings from the PHASE_1 table:
// standings leader hosts 4th place, runner-up hosts 3rd.
func SeedPhaseTwo(games []match.Game, standings []match.Standing) []match.Game {
	if len(standings) < 4 {
		return games
	}

	pairs := [][2]string{
		{standings[0].TeamID, standings[3].TeamID},
		{standings[1].TeamID, standings[2].TeamID},
	}
	idx := 0
	for i := range games {
		if games[i].Phase != match.PhaseTwo || games[i].Resolved() || games[i].TieBreak {
			continue
		}
		if idx >= len(pairs) {
			break
		}
		games[i].HomeTeamID = pairs[idx][0]
		games[i].AwayTeamID = pairs[idx][1]
		idx++
	}
	return games
}

// SeedKnockout writes the medal-game pairings from the combined PHASE_1 +
// PHASE_2 table: 1st hosts 2nd in the final, 3rd hosts 4th for bronze.
func SeedKnockout(games []match.Game, standings []match.Standing) []match.Game {
	if len(standings) < 4 {
		return games
	}

	for i := range games {
		if games[i].Resolved() {
			continue
		}
		switch games[i].Phase {
		case match.PhaseFinal:
			games[i].HomeTeamID = standings[0].TeamID
			games[i].AwayTeamID = standings[1].TeamID
		case match.PhaseThirdPlace:
			games[i].HomeTeamID = standings[2].TeamID
			games[i].AwayTeamID = standings[3].TeamID
		}
	}
	return games
}
