// Package preset stores reusable player selections for the draft screen.
package preset

import (
	"context"
	"errors"
	"strings"
)

// Preset is a named set of players an operator drafts from regularly.
type Preset struct {
	ID        string
	Name      string
	PlayerIDs []string
}

func (p Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("preset name is required")
	}
	if len(p.PlayerIDs) == 0 {
		return errors.New("preset needs at least one player")
	}
	return nil
}

// Repository persists presets.
type Repository interface {
	List(ctx context.Context) ([]Preset, error)
	GetByID(ctx context.Context, id string) (Preset, bool, error)
	Create(ctx context.Context, p Preset) error
	Update(ctx context.Context, p Preset) error
	Delete(ctx context.Context, id string) error
}
