package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peladahub/pelada/internal/domain/halloffame"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
)

func settlementFixture() (*stubPlayerRepo, *stubMatchRepo, *stubHallOfFameRepo) {
	playerRepo := newStubPlayerRepo(
		player.Player{
			ID: "p1", Name: "Ana", Position: player.PositionForward, Overall: 70,
			Attributes:   player.Attributes{Pace: 80, Shooting: 74, Passing: 60, Defending: 40},
			Accumulators: player.Accumulators{Shooting: 8.4, Pace: 2.1},
		},
		player.Player{
			ID: "p2", Name: "Bruno", Position: player.PositionDefender, Overall: 70,
			Attributes: player.Attributes{Pace: 70, Shooting: 50, Passing: 62, Defending: 78},
		},
	)

	m := match.Match{
		ID:     "m1",
		Date:   time.Date(2026, 7, 11, 9, 0, 0, 0, time.UTC),
		Type:   match.TypeTriangular,
		Status: match.StatusFinished,
		Teams: []match.Team{
			{ID: "t1", Players: []player.Player{{ID: "p1"}}},
			{ID: "t2", Players: []player.Player{{ID: "p2"}}},
		},
		Games: []match.Game{
			{ID: "g1", HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 2, AwayScore: 0,
				Status: match.GameFinished, Phase: match.PhaseOne, Sequence: 1},
		},
		Goals: []match.Goal{
			{ID: "o1", GameID: "g1", TeamID: "t1", ScorerID: "p1"},
			{ID: "o2", GameID: "g1", TeamID: "t1", ScorerID: "p1"},
		},
	}
	return playerRepo, newStubMatchRepo(m), &stubHallOfFameRepo{}
}

func TestSettlementPreviewAndCommitAreIdentical(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	playerRepo, matchRepo, hofRepo := settlementFixture()
	svc := NewSettlementService(playerRepo, matchRepo, hofRepo, &seqIDGen{prefix: "h"}, 2)

	preview, err := svc.Preview(ctx, "2026-07")
	require.NoError(t, err)
	assert.False(t, preview.Committed)

	committed, err := svc.Commit(ctx, "2026-07")
	require.NoError(t, err)
	assert.True(t, committed.Committed)

	require.Len(t, preview.Players, 2)
	assert.Equal(t, preview.Players, committed.Players)

	// Shooting gained round(8.4/4) = 2, pace round(2.1/4) = 1.
	ana := committed.Players[0]
	assert.Equal(t, "p1", ana.PlayerID)
	assert.Equal(t, 76, ana.After.Shooting)
	assert.Equal(t, 81, ana.After.Pace)
	assert.True(t, ana.Changed)

	// Preview is read-only; Commit resets the accumulators.
	stored, _, err := playerRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, player.Accumulators{}, stored.Accumulators)
	assert.Equal(t, ana.After, stored.Attributes)
}

func TestSettlementCommitWritesHistoryAndTitles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	playerRepo, matchRepo, hofRepo := settlementFixture()
	svc := NewSettlementService(playerRepo, matchRepo, hofRepo, &seqIDGen{prefix: "h"}, 0)

	committed, err := svc.Commit(ctx, "2026-07")
	require.NoError(t, err)

	stored, _, err := playerRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	if assert.Len(t, stored.RatingHistory, 1) {
		assert.Equal(t, stored.Overall, stored.RatingHistory[0].Overall)
	}

	// Ana won the game and scored both goals; Bruno conceded both but kept
	// no clean sheet, so only three categories have winners.
	byCategory := map[halloffame.Category]halloffame.Entry{}
	for _, title := range committed.Titles {
		byCategory[title.Category] = title
	}
	assert.Equal(t, "p1", byCategory[halloffame.CategoryWins].PlayerID)
	assert.Equal(t, "p1", byCategory[halloffame.CategoryGoals].PlayerID)
	assert.Equal(t, 2, byCategory[halloffame.CategoryGoals].Value)
	assert.Equal(t, "p1", byCategory[halloffame.CategoryCleanSheets].PlayerID)
	assert.NotContains(t, byCategory, halloffame.CategoryAssists)

	// The month is now settled; a second commit must refuse.
	_, err = svc.Commit(ctx, "2026-07")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSettlementRejectsMalformedMonth(t *testing.T) {
	t.Parallel()

	playerRepo, matchRepo, hofRepo := settlementFixture()
	svc := NewSettlementService(playerRepo, matchRepo, hofRepo, &seqIDGen{prefix: "h"}, 2)

	_, err := svc.Preview(context.Background(), "july-2026")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
