package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/peladahub/pelada/internal/domain/player"
	qb "github.com/peladahub/pelada/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		p, err := playerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(
			qb.Eq("id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	p, err := playerFromRow(row)
	if err != nil {
		return player.Player{}, false, err
	}
	return p, true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []string) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	query, args, err := playerBaseSelectBuilder().
		Where(
			qb.In("id", values),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	byID := make(map[string]player.Player, len(rows))
	for _, row := range rows {
		p, err := playerFromRow(row)
		if err != nil {
			return nil, err
		}
		byID[p.ID] = p
	}

	// Preserve the requested order, skipping ids that matched nothing.
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	model, err := playerToInsertModel(p)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("players", model, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("player %s already exists: %w", p.ID, err)
		}
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := playerUpdateQuery(p)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update player rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update player: %s not found", p.ID)
	}
	return nil
}

func (r *PlayerRepository) BulkUpdate(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bulk update: %w", err)
	}
	defer tx.Rollback()

	for _, p := range players {
		query, args, err := playerUpdateQuery(p)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("bulk update player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bulk update: %w", err)
	}
	return nil
}

func playerUpdateQuery(p player.Player) (string, []any, error) {
	model, err := playerToInsertModel(p)
	if err != nil {
		return "", nil, err
	}

	return qb.Update("players").
		Set("name", model.Name).
		Set("email", model.Email).
		Set("position", model.Position).
		Set("play_style", model.PlayStyle).
		Set("pace", model.Pace).
		Set("shooting", model.Shooting).
		Set("passing", model.Passing).
		Set("defending", model.Defending).
		Set("overall", model.Overall).
		Set("accumulators", model.Accumulators).
		Set("rating_history", model.RatingHistory).
		Set("is_admin", model.IsAdmin).
		Set("photo_url", model.PhotoURL).
		Set("shirt_number", model.ShirtNumber).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", p.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
}

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("players")
}
