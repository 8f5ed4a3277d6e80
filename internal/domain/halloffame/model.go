// Package halloffame records the monthly category winners.
package halloffame

import (
	"context"
	"errors"
	"fmt"
)

// Category is one of the monthly award tracks.
type Category string

const (
	CategoryWins        Category = "WINS"
	CategoryGoals       Category = "GOALS"
	CategoryAssists     Category = "ASSISTS"
	CategoryCleanSheets Category = "CLEAN_SHEETS"
)

var ErrUnknownCategory = errors.New("unknown hall of fame category")

// AllCategories lists every award track in display order.
var AllCategories = []Category{
	CategoryWins,
	CategoryGoals,
	CategoryAssists,
	CategoryCleanSheets,
}

func (c Category) Validate() error {
	switch c {
	case CategoryWins, CategoryGoals, CategoryAssists, CategoryCleanSheets:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
}

// Entry is one monthly title. Month is stored as "2006-01" so entries sort
// lexicographically by time.
type Entry struct {
	ID       string
	Month    string
	Category Category
	PlayerID string
	Value    int
}

// Repository persists hall of fame entries.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	ListByMonth(ctx context.Context, month string) ([]Entry, error)
	Create(ctx context.Context, entry Entry) error
}
