package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/peladahub/pelada/internal/platform/querybuilder"
)

type achievementGrantModel struct {
	PlayerID      string `db:"player_id"`
	AchievementID string `db:"achievement_id"`
}

type AchievementGrantRepository struct {
	db *sqlx.DB
}

func NewAchievementGrantRepository(db *sqlx.DB) *AchievementGrantRepository {
	return &AchievementGrantRepository{db: db}
}

func (r *AchievementGrantRepository) ListByPlayer(ctx context.Context, playerID string) ([]string, error) {
	query, args, err := qb.Select("achievement_id").From("achievement_grants").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("achievement_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list grants query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	return ids, nil
}

func (r *AchievementGrantRepository) Grant(ctx context.Context, playerID, achievementID string) error {
	model := achievementGrantModel{PlayerID: playerID, AchievementID: achievementID}

	query, args, err := qb.InsertModel("achievement_grants", model,
		"ON CONFLICT (player_id, achievement_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build grant query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("grant achievement: %w", err)
	}
	return nil
}

func (r *AchievementGrantRepository) Revoke(ctx context.Context, playerID, achievementID string) error {
	query, args, err := qb.DeleteFrom("achievement_grants").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("achievement_id", achievementID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build revoke query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("revoke achievement: %w", err)
	}
	return nil
}
