package match

import "testing"

func finishedGame(phase Phase, home, away string, homeScore, awayScore int) Game {
	return Game{
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Status:     GameFinished,
		Phase:      phase,
	}
}

func quadrangularFixture() Match {
	return Match{
		ID:     "match-1",
		Type:   TypeQuadrangular,
		Status: StatusOpen,
		Teams: []Team{
			{ID: "team-a"}, {ID: "team-b"}, {ID: "team-c"}, {ID: "team-d"},
		},
		Games: []Game{
			finishedGame(PhaseOne, "team-a", "team-b", 2, 0),
			finishedGame(PhaseOne, "team-c", "team-d", 1, 1),
			finishedGame(PhaseOne, "team-a", "team-c", 1, 0),
			finishedGame(PhaseOne, "team-b", "team-d", 2, 2),
			finishedGame(PhaseOne, "team-a", "team-d", 3, 1),
			finishedGame(PhaseOne, "team-b", "team-c", 0, 0),
		},
	}
}

func TestComputeStandingsPhaseOneScenario(t *testing.T) {
	t.Parallel()

	rows := ComputeStandings(quadrangularFixture())
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	// A sweeps for 9 points. B, C and D all land on 2 points with no wins,
	// so goal difference ranks C (-1) above D and B (-2), and D's 4 goals
	// beat B's 2.
	wantOrder := []string{"team-a", "team-c", "team-d", "team-b"}
	for i, want := range wantOrder {
		if rows[i].TeamID != want {
			t.Fatalf("rank %d = %s, want %s (rows %+v)", i+1, rows[i].TeamID, want, rows)
		}
	}

	if rows[0].Points != 9 || rows[0].Wins != 3 || rows[0].GoalDiff != 5 {
		t.Fatalf("unexpected leader row: %+v", rows[0])
	}
	if rows[3].Points != 2 || rows[3].GoalsFor != 2 {
		t.Fatalf("unexpected last row: %+v", rows[3])
	}
}

func TestComputeStandingsIgnoresKnockoutGames(t *testing.T) {
	t.Parallel()

	m := quadrangularFixture()
	before := ComputeStandings(m)

	m.Games = append(m.Games,
		finishedGame(PhaseThirdPlace, "team-d", "team-b", 4, 0),
		finishedGame(PhaseFinal, "team-c", "team-a", 9, 0),
	)
	after := ComputeStandings(m)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("knockout game changed standings row %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestComputeStandingsCountsPhaseTwo(t *testing.T) {
	t.Parallel()

	m := quadrangularFixture()
	m.Games = append(m.Games, finishedGame(PhaseTwo, "team-b", "team-c", 1, 0))

	rows := ComputeStandings(m)
	for _, row := range rows {
		if row.TeamID == "team-b" {
			if row.Points != 5 || row.Wins != 1 {
				t.Fatalf("phase two win not counted: %+v", row)
			}
			return
		}
	}
	t.Fatal("team-b row missing")
}

func TestComputeStandingsIgnoresTieBreakGames(t *testing.T) {
	t.Parallel()

	m := quadrangularFixture()
	tieBreak := finishedGame(PhaseTwo, "team-c", "team-d", 0, 0)
	tieBreak.TieBreak = true
	m.Games = append(m.Games, tieBreak)

	rows := ComputeStandings(m)
	for _, row := range rows {
		if row.TeamID == "team-c" && row.Played != 3 {
			t.Fatalf("tie-break game counted into played: %+v", row)
		}
	}
}
