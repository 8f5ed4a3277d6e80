package memory

import (
	"context"
	"sync"
)

// AchievementGrantRepository stores manually awarded badge ids per player.
type AchievementGrantRepository struct {
	mu     sync.RWMutex
	grants map[string][]string
}

func NewAchievementGrantRepository() *AchievementGrantRepository {
	return &AchievementGrantRepository{grants: make(map[string][]string)}
}

func (r *AchievementGrantRepository) ListByPlayer(_ context.Context, playerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.grants[playerID]...), nil
}

func (r *AchievementGrantRepository) Grant(_ context.Context, playerID, achievementID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.grants[playerID] {
		if id == achievementID {
			return nil
		}
	}
	r.grants[playerID] = append(r.grants[playerID], achievementID)

	return nil
}

func (r *AchievementGrantRepository) Revoke(_ context.Context, playerID, achievementID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.grants[playerID][:0]
	for _, id := range r.grants[playerID] {
		if id != achievementID {
			kept = append(kept, id)
		}
	}
	r.grants[playerID] = kept

	return nil
}
