package achievement

import (
	"testing"
	"time"

	"github.com/peladahub/pelada/internal/domain/halloffame"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
)

func finishedEvent(id string, date time.Time, games []match.Game, goals []match.Goal) match.Match {
	return match.Match{
		ID:     id,
		Date:   date,
		Type:   match.TypeTriangular,
		Status: match.StatusFinished,
		Teams: []match.Team{
			{ID: "t1", MatchID: id, Players: []player.Player{{ID: "p1"}, {ID: "p2"}}},
			{ID: "t2", MatchID: id, Players: []player.Player{{ID: "p3"}}},
			{ID: "t3", MatchID: id, Players: []player.Player{{ID: "p4"}}},
		},
		Games: games,
		Goals: goals,
	}
}

func TestAggregateCountsAndHatTrick(t *testing.T) {
	t.Parallel()

	games := []match.Game{
		{ID: "g1", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 3, AwayScore: 0,
			Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 1},
		{ID: "g2", HomeTeamID: "t2", AwayTeamID: "t3", HomeScore: 1, AwayScore: 1,
			Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 2},
		{ID: "g3", HomeTeamID: "t3", AwayTeamID: "t1", HomeScore: 2, AwayScore: 1,
			Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 3},
	}
	goals := []match.Goal{
		{ID: "o1", GameID: "g1", TeamID: "t1", ScorerID: "p1", AssistID: "p2"},
		{ID: "o2", GameID: "g1", TeamID: "t1", ScorerID: "p1", AssistID: "p2"},
		{ID: "o3", GameID: "g1", TeamID: "t1", ScorerID: "p1"},
		{ID: "o4", GameID: "g2", TeamID: "t2", ScorerID: "p3"},
		{ID: "o5", GameID: "g2", TeamID: "t3", ScorerID: "p4"},
		{ID: "o6", GameID: "g3", TeamID: "t3", ScorerID: "p4"},
		{ID: "o7", GameID: "g3", TeamID: "t3", ScorerID: "p4"},
		{ID: "o8", GameID: "g3", TeamID: "t1", ScorerID: "p2", AssistID: "p1"},
	}
	m := finishedEvent("m1", time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), games, goals)

	stats := Aggregate("p1", []match.Match{m}, nil)

	if stats.Matches != 1 {
		t.Errorf("matches = %d, want 1", stats.Matches)
	}
	if stats.Wins != 1 {
		t.Errorf("wins = %d, want 1", stats.Wins)
	}
	if stats.Goals != 3 {
		t.Errorf("goals = %d, want 3", stats.Goals)
	}
	if stats.Assists != 1 {
		t.Errorf("assists = %d, want 1", stats.Assists)
	}
	if stats.HatTricks != 1 {
		t.Errorf("hat tricks = %d, want 1", stats.HatTricks)
	}
	if stats.CleanSheets != 1 {
		t.Errorf("clean sheets = %d, want 1", stats.CleanSheets)
	}
	// t1 took 3 points, t3 took 4.
	if stats.Titles != 0 {
		t.Errorf("titles = %d, want 0", stats.Titles)
	}
}

func TestAggregateCleanStreakCompletesAndResets(t *testing.T) {
	t.Parallel()

	clean := func(id string, seq, oppScore int) match.Game {
		return match.Game{ID: id, HomeTeamID: "t1", AwayTeamID: "t2",
			HomeScore: 1, AwayScore: oppScore,
			Status: match.GameFinished, Phase: match.PhaseOne, Sequence: seq}
	}
	// Seven games: five clean, one conceded in the middle, one clean after.
	games := []match.Game{
		clean("g1", 1, 0),
		clean("g2", 2, 0),
		clean("g3", 3, 0), // first streak completes here
		clean("g4", 4, 0),
		clean("g5", 5, 2), // conceded, running streak resets
		clean("g6", 6, 0),
		clean("g7", 7, 0),
	}
	m := finishedEvent("m1", time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC), games, nil)

	stats := Aggregate("p1", []match.Match{m}, nil)

	if stats.CleanSheets != 6 {
		t.Errorf("clean sheets = %d, want 6", stats.CleanSheets)
	}
	// g1-g3 complete one streak; g4 starts a new one that dies at g5; g6-g7
	// leave a streak of two in flight.
	if stats.CleanStreaks != 1 {
		t.Errorf("clean streaks = %d, want 1", stats.CleanStreaks)
	}
}

func TestAggregateStreakCarriesAcrossEvents(t *testing.T) {
	t.Parallel()

	first := finishedEvent("m1", time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		[]match.Game{
			{ID: "g1", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 2, AwayScore: 0,
				Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 1},
			{ID: "g2", HomeTeamID: "t1", AwayTeamID: "t3", HomeScore: 1, AwayScore: 0,
				Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 2},
		}, nil)
	second := finishedEvent("m2", time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC),
		[]match.Game{
			{ID: "g3", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 1, AwayScore: 0,
				Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 1},
		}, nil)

	// Pass events out of order; aggregation sorts by date.
	stats := Aggregate("p1", []match.Match{second, first}, nil)

	if stats.CleanStreaks != 1 {
		t.Errorf("clean streaks = %d, want 1", stats.CleanStreaks)
	}
}

func TestAggregateIgnoresDraftEventsAndTieBreaks(t *testing.T) {
	t.Parallel()

	draft := finishedEvent("m1", time.Date(2026, 6, 6, 0, 0, 0, 0, time.UTC),
		[]match.Game{
			{ID: "g1", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 5, AwayScore: 0,
				Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 1},
		}, nil)
	draft.Status = match.StatusDraft

	tieBreakOnly := finishedEvent("m2", time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC),
		[]match.Game{
			{ID: "g2", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 0, AwayScore: 0,
				Status: match.GameFinished, Phase: match.PhaseTwo, Sequence: 1, TieBreak: true},
		}, nil)

	stats := Aggregate("p1", []match.Match{draft, tieBreakOnly}, nil)

	if stats.Wins != 0 || stats.CleanSheets != 0 {
		t.Errorf("stats = %+v, want no wins or clean sheets", stats)
	}
}

func TestAggregateMonthlyTitles(t *testing.T) {
	t.Parallel()

	titles := []halloffame.Entry{
		{Month: "2026-03", Category: halloffame.CategoryGoals, PlayerID: "p1"},
		{Month: "2026-04", Category: halloffame.CategoryGoals, PlayerID: "p1"},
		{Month: "2026-04", Category: halloffame.CategoryWins, PlayerID: "p2"},
	}

	stats := Aggregate("p1", nil, titles)

	if stats.MonthlyTitles[halloffame.CategoryGoals] != 2 {
		t.Errorf("goal titles = %d, want 2", stats.MonthlyTitles[halloffame.CategoryGoals])
	}
	if stats.MonthlyTitles[halloffame.CategoryWins] != 0 {
		t.Errorf("win titles = %d, want 0", stats.MonthlyTitles[halloffame.CategoryWins])
	}
}

func TestEvaluateManualGrantAndProgress(t *testing.T) {
	t.Parallel()

	stats := CareerStats{Matches: 25, Goals: 10}
	evaluated := Evaluate(stats, map[string]bool{"lenda": true})

	byID := map[string]PlayerAchievement{}
	for _, a := range evaluated {
		byID[a.ID] = a
	}

	if !byID["estreia"].Unlocked {
		t.Error("first-match badge should unlock at 25 matches")
	}
	if got := byID["presenca-vip"].Progress; got != 50 {
		t.Errorf("attendance progress = %d, want 50", got)
	}
	if got := byID["artilheiro"].Progress; got != 20 {
		t.Errorf("scoring progress = %d, want 20", got)
	}

	lenda := byID["lenda"]
	if !lenda.Unlocked {
		t.Error("manual grant should unlock the badge")
	}
	if !lenda.ManualOnly {
		t.Error("badge should stay marked manual-only")
	}

	// Without the grant it never unlocks, whatever the stats say.
	evaluated = Evaluate(CareerStats{Matches: 1000, Goals: 1000}, nil)
	for _, a := range evaluated {
		if a.ID == "lenda" && a.Unlocked {
			t.Error("manual-only badge unlocked without a grant")
		}
	}
}
