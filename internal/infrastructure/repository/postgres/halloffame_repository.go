package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/peladahub/pelada/internal/domain/halloffame"
	qb "github.com/peladahub/pelada/internal/platform/querybuilder"
)

type hallOfFameTableModel struct {
	ID       string `db:"id"`
	Month    string `db:"month"`
	Category string `db:"category"`
	PlayerID string `db:"player_id"`
	Value    int    `db:"value"`
}

type HallOfFameRepository struct {
	db *sqlx.DB
}

func NewHallOfFameRepository(db *sqlx.DB) *HallOfFameRepository {
	return &HallOfFameRepository{db: db}
}

func (r *HallOfFameRepository) List(ctx context.Context) ([]halloffame.Entry, error) {
	query, args, err := hallOfFameBaseSelectBuilder().
		OrderBy("month", "category", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list hall of fame query: %w", err)
	}
	return r.selectEntries(ctx, query, args)
}

func (r *HallOfFameRepository) ListByMonth(ctx context.Context, month string) ([]halloffame.Entry, error) {
	query, args, err := hallOfFameBaseSelectBuilder().
		Where(qb.Eq("month", month)).
		OrderBy("category", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list hall of fame by month query: %w", err)
	}
	return r.selectEntries(ctx, query, args)
}

func (r *HallOfFameRepository) Create(ctx context.Context, entry halloffame.Entry) error {
	model := hallOfFameTableModel{
		ID:       entry.ID,
		Month:    entry.Month,
		Category: string(entry.Category),
		PlayerID: entry.PlayerID,
		Value:    entry.Value,
	}

	query, args, err := qb.InsertModel("hall_of_fame", model, "")
	if err != nil {
		return fmt.Errorf("build insert hall of fame query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("hall of fame entry for %s %s already exists: %w", entry.Month, entry.Category, err)
		}
		return fmt.Errorf("insert hall of fame entry: %w", err)
	}
	return nil
}

func (r *HallOfFameRepository) selectEntries(ctx context.Context, query string, args []any) ([]halloffame.Entry, error) {
	var rows []hallOfFameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list hall of fame entries: %w", err)
	}

	out := make([]halloffame.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, halloffame.Entry{
			ID:       row.ID,
			Month:    row.Month,
			Category: halloffame.Category(row.Category),
			PlayerID: row.PlayerID,
			Value:    row.Value,
		})
	}
	return out, nil
}

func hallOfFameBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("hall_of_fame")
}
