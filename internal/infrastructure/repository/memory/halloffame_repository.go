package memory

import (
	"context"
	"sync"

	"github.com/peladahub/pelada/internal/domain/halloffame"
)

type HallOfFameRepository struct {
	mu      sync.RWMutex
	entries []halloffame.Entry
}

func NewHallOfFameRepository(entries []halloffame.Entry) *HallOfFameRepository {
	return &HallOfFameRepository{
		entries: append([]halloffame.Entry(nil), entries...),
	}
}

func (r *HallOfFameRepository) List(_ context.Context) ([]halloffame.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]halloffame.Entry(nil), r.entries...), nil
}

func (r *HallOfFameRepository) ListByMonth(_ context.Context, month string) ([]halloffame.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]halloffame.Entry, 0, len(halloffame.AllCategories))
	for _, e := range r.entries {
		if e.Month == month {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *HallOfFameRepository) Create(_ context.Context, entry halloffame.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)

	return nil
}
