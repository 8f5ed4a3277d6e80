package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/peladahub/pelada/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]match.Match
	orders []string
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	orders := make([]string, 0, len(matches))

	for _, m := range matches {
		items[m.ID] = m
		orders = append(orders, m.ID)
	}

	return &MatchRepository{
		items:  items,
		orders: orders,
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, copyMatch(r.items[id]))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return copyMatch(m), true, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[m.ID]; !exists {
		r.orders = append(r.orders, m.ID)
	}
	r.items[m.ID] = copyMatch(m)

	return nil
}

func (r *MatchRepository) UpdateStatus(_ context.Context, id string, status match.Status) error {
	return r.mutate(id, func(m *match.Match) {
		m.Status = status
	})
}

func (r *MatchRepository) UpdateChampionPhoto(_ context.Context, id, photoURL string) error {
	return r.mutate(id, func(m *match.Match) {
		m.ChampionPhotoURL = photoURL
	})
}

func (r *MatchRepository) UpdateTeams(_ context.Context, id string, teams []match.Team) error {
	return r.mutate(id, func(m *match.Match) {
		m.Teams = append([]match.Team(nil), teams...)
	})
}

func (r *MatchRepository) ReplaceGames(_ context.Context, id string, games []match.Game) error {
	return r.mutate(id, func(m *match.Match) {
		m.Games = copyGames(games)
	})
}

func (r *MatchRepository) UpdateGame(_ context.Context, matchID string, game match.Game) error {
	found := false
	err := r.mutate(matchID, func(m *match.Match) {
		for i := range m.Games {
			if m.Games[i].ID == game.ID {
				m.Games[i] = copyGame(game)
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("game %s not found in match %s", game.ID, matchID)
	}
	return nil
}

func (r *MatchRepository) InsertGoal(_ context.Context, matchID string, goal match.Goal) error {
	return r.mutate(matchID, func(m *match.Match) {
		m.Goals = append(m.Goals, goal)
	})
}

func (r *MatchRepository) UpdateGoal(_ context.Context, matchID string, goal match.Goal) error {
	found := false
	err := r.mutate(matchID, func(m *match.Match) {
		for i := range m.Goals {
			if m.Goals[i].ID == goal.ID {
				m.Goals[i] = goal
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("goal %s not found in match %s", goal.ID, matchID)
	}
	return nil
}

func (r *MatchRepository) ClearGoals(_ context.Context, matchID string) error {
	return r.mutate(matchID, func(m *match.Match) {
		m.Goals = nil
	})
}

func (r *MatchRepository) mutate(id string, fn func(*match.Match)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return fmt.Errorf("match %s not found", id)
	}
	fn(&m)
	r.items[id] = m

	return nil
}

// Matches hold a pointer-typed shootout, so reads hand out copies to keep
// callers from mutating stored state behind the lock.
func copyMatch(m match.Match) match.Match {
	m.Teams = append([]match.Team(nil), m.Teams...)
	m.Games = copyGames(m.Games)
	m.Goals = append([]match.Goal(nil), m.Goals...)
	return m
}

func copyGames(games []match.Game) []match.Game {
	out := make([]match.Game, 0, len(games))
	for _, g := range games {
		out = append(out, copyGame(g))
	}
	return out
}

func copyGame(g match.Game) match.Game {
	if g.Shootout != nil {
		shootout := *g.Shootout
		shootout.Kicks = append([]match.Kick(nil), shootout.Kicks...)
		g.Shootout = &shootout
	}
	return g
}
