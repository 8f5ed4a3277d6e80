package memory

import (
	"context"
	"sync"

	"github.com/peladahub/pelada/internal/domain/preset"
)

type PresetRepository struct {
	mu     sync.RWMutex
	items  map[string]preset.Preset
	orders []string
}

func NewPresetRepository(presets []preset.Preset) *PresetRepository {
	items := make(map[string]preset.Preset, len(presets))
	orders := make([]string, 0, len(presets))

	for _, p := range presets {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PresetRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PresetRepository) List(_ context.Context) ([]preset.Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]preset.Preset, 0, len(r.orders))
	for _, id := range r.orders {
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PresetRepository) GetByID(_ context.Context, id string) (preset.Preset, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return preset.Preset{}, false, nil
	}

	return p, true, nil
}

func (r *PresetRepository) Create(_ context.Context, p preset.Preset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[p.ID]; !exists {
		r.orders = append(r.orders, p.ID)
	}
	r.items[p.ID] = p

	return nil
}

func (r *PresetRepository) Update(ctx context.Context, p preset.Preset) error {
	return r.Create(ctx, p)
}

func (r *PresetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	for i, existing := range r.orders {
		if existing == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
