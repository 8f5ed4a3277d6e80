package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/peladahub/pelada/internal/domain/preset"
	qb "github.com/peladahub/pelada/internal/platform/querybuilder"
)

type presetTableModel struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	PlayerIDs []byte `db:"player_ids"`
}

type PresetRepository struct {
	db *sqlx.DB
}

func NewPresetRepository(db *sqlx.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

func (r *PresetRepository) List(ctx context.Context) ([]preset.Preset, error) {
	query, args, err := qb.Select("*").From("presets").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list presets query: %w", err)
	}

	var rows []presetTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	out := make([]preset.Preset, 0, len(rows))
	for _, row := range rows {
		p, err := presetFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PresetRepository) GetByID(ctx context.Context, id string) (preset.Preset, bool, error) {
	query, args, err := qb.Select("*").From("presets").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return preset.Preset{}, false, fmt.Errorf("build get preset query: %w", err)
	}

	var row presetTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return preset.Preset{}, false, nil
		}
		return preset.Preset{}, false, fmt.Errorf("get preset: %w", err)
	}

	p, err := presetFromRow(row)
	if err != nil {
		return preset.Preset{}, false, err
	}
	return p, true, nil
}

func (r *PresetRepository) Create(ctx context.Context, p preset.Preset) error {
	model, err := presetToTableModel(p)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("presets", model, "")
	if err != nil {
		return fmt.Errorf("build insert preset query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("preset %s already exists: %w", p.ID, err)
		}
		return fmt.Errorf("insert preset: %w", err)
	}
	return nil
}

func (r *PresetRepository) Update(ctx context.Context, p preset.Preset) error {
	model, err := presetToTableModel(p)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("presets").
		Set("name", model.Name).
		Set("player_ids", model.PlayerIDs).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update preset query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update preset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update preset rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update preset: %s not found", p.ID)
	}
	return nil
}

func (r *PresetRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("presets").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete preset query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	return nil
}

func presetToTableModel(p preset.Preset) (presetTableModel, error) {
	ids, err := sonic.Marshal(p.PlayerIDs)
	if err != nil {
		return presetTableModel{}, fmt.Errorf("marshal preset player ids: %w", err)
	}
	return presetTableModel{ID: p.ID, Name: p.Name, PlayerIDs: ids}, nil
}

func presetFromRow(row presetTableModel) (preset.Preset, error) {
	var ids []string
	if len(row.PlayerIDs) > 0 {
		if err := sonic.Unmarshal(row.PlayerIDs, &ids); err != nil {
			return preset.Preset{}, fmt.Errorf("unmarshal preset player ids: %w", err)
		}
	}
	return preset.Preset{ID: row.ID, Name: row.Name, PlayerIDs: ids}, nil
}
