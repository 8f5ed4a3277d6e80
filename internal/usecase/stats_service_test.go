package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peladahub/pelada/internal/domain/halloffame"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/platform/cache"
)

func statsFixture() (*StatsService, *stubGrantRepo) {
	playerRepo := newStubPlayerRepo(
		player.Player{ID: "p1", Name: "Ana", Position: player.PositionForward, Overall: 70},
		player.Player{ID: "p2", Name: "Bruno", Position: player.PositionDefender, Overall: 68},
	)
	matchRepo := newStubMatchRepo(match.Match{
		ID:     "m1",
		Date:   time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC),
		Type:   match.TypeTriangular,
		Status: match.StatusFinished,
		Teams: []match.Team{
			{ID: "t1", Players: []player.Player{{ID: "p1"}}},
			{ID: "t2", Players: []player.Player{{ID: "p2"}}},
		},
		Games: []match.Game{
			{ID: "g1", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 3, AwayScore: 0,
				Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 1},
		},
		Goals: []match.Goal{
			{ID: "o1", GameID: "g1", TeamID: "t1", ScorerID: "p1"},
			{ID: "o2", GameID: "g1", TeamID: "t1", ScorerID: "p1"},
			{ID: "o3", GameID: "g1", TeamID: "t1", ScorerID: "p1"},
		},
	})
	hofRepo := &stubHallOfFameRepo{entries: []halloffame.Entry{
		{ID: "h1", Month: "2026-06", Category: halloffame.CategoryGoals, PlayerID: "p1", Value: 3},
	}}
	grantRepo := newStubGrantRepo()
	svc := NewStatsService(playerRepo, matchRepo, hofRepo, grantRepo, cache.NewStore(time.Minute))
	return svc, grantRepo
}

func TestCareerStatsAndAchievements(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := statsFixture()

	stats, err := svc.CareerStats(ctx, "p1")
	if err != nil {
		t.Fatalf("career stats: %v", err)
	}
	if stats.Goals != 3 || stats.HatTricks != 1 {
		t.Errorf("stats = %+v, want 3 goals and a hat-trick", stats)
	}
	if stats.MonthlyTitles[halloffame.CategoryGoals] != 1 {
		t.Errorf("monthly goal titles = %d, want 1", stats.MonthlyTitles[halloffame.CategoryGoals])
	}

	badges, err := svc.Achievements(ctx, "p1")
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	found := false
	for _, b := range badges {
		if b.ID == "hat-trick" {
			found = true
			if !b.Unlocked || b.Progress != 100 {
				t.Errorf("hat-trick badge = %+v, want unlocked at 100", b)
			}
		}
	}
	if !found {
		t.Error("hat-trick badge missing from catalog")
	}

	if _, err := svc.CareerStats(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing player: err = %v, want ErrNotFound", err)
	}
}

func TestGrantAchievementValidatesCatalog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, grantRepo := statsFixture()

	if err := svc.GrantAchievement(ctx, "p2", "lenda"); err != nil {
		t.Fatalf("grant: %v", err)
	}
	granted, _ := grantRepo.ListByPlayer(ctx, "p2")
	if len(granted) != 1 || granted[0] != "lenda" {
		t.Fatalf("grants = %v, want [lenda]", granted)
	}

	if err := svc.GrantAchievement(ctx, "p2", "no-such-badge"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown badge: err = %v, want ErrInvalidInput", err)
	}
	if err := svc.GrantAchievement(ctx, "ghost", "lenda"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown player: err = %v, want ErrNotFound", err)
	}

	if err := svc.RevokeAchievement(ctx, "p2", "lenda"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	granted, _ = grantRepo.ListByPlayer(ctx, "p2")
	if len(granted) != 0 {
		t.Fatalf("grants after revoke = %v, want none", granted)
	}
}

func TestDashboardAggregates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _ := statsFixture()

	dashboard, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard.PlayerCount != 2 || dashboard.FinishedMatches != 1 {
		t.Errorf("counts = %d players / %d matches, want 2/1",
			dashboard.PlayerCount, dashboard.FinishedMatches)
	}
	if len(dashboard.TopScorers) != 1 || dashboard.TopScorers[0].PlayerID != "p1" || dashboard.TopScorers[0].Value != 3 {
		t.Errorf("top scorers = %+v, want p1 with 3", dashboard.TopScorers)
	}
	if len(dashboard.MostWins) != 1 || dashboard.MostWins[0].PlayerID != "p1" {
		t.Errorf("most wins = %+v, want p1", dashboard.MostWins)
	}
	if len(dashboard.RecentTitles) != 1 {
		t.Errorf("recent titles = %+v, want the June title", dashboard.RecentTitles)
	}
}
