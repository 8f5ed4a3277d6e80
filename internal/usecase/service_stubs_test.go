package usecase

import (
	"context"
	"fmt"

	"github.com/peladahub/pelada/internal/domain/achievement"
	"github.com/peladahub/pelada/internal/domain/halloffame"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/domain/preset"
)

type seqIDGen struct {
	prefix string
	next   int
}

func (g *seqIDGen) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next), nil
}

type stubPlayerRepo struct {
	players map[string]player.Player
	order   []string
}

func newStubPlayerRepo(players ...player.Player) *stubPlayerRepo {
	repo := &stubPlayerRepo{players: map[string]player.Player{}}
	for _, p := range players {
		repo.players[p.ID] = p
		repo.order = append(repo.order, p.ID)
	}
	return repo
}

func (r *stubPlayerRepo) List(context.Context) ([]player.Player, error) {
	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out, nil
}

func (r *stubPlayerRepo) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	p, ok := r.players[id]
	return p, ok, nil
}

func (r *stubPlayerRepo) GetByIDs(_ context.Context, ids []string) ([]player.Player, error) {
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPlayerRepo) Create(_ context.Context, p player.Player) error {
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubPlayerRepo) Update(_ context.Context, p player.Player) error {
	r.players[p.ID] = p
	return nil
}

func (r *stubPlayerRepo) BulkUpdate(_ context.Context, players []player.Player) error {
	for _, p := range players {
		r.players[p.ID] = p
	}
	return nil
}

type stubMatchRepo struct {
	matches map[string]match.Match
	order   []string
}

func newStubMatchRepo(matches ...match.Match) *stubMatchRepo {
	repo := &stubMatchRepo{matches: map[string]match.Match{}}
	for _, m := range matches {
		repo.matches[m.ID] = m
		repo.order = append(repo.order, m.ID)
	}
	return repo
}

func (r *stubMatchRepo) List(context.Context) ([]match.Match, error) {
	out := make([]match.Match, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.matches[id])
	}
	return out, nil
}

func (r *stubMatchRepo) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	m, ok := r.matches[id]
	return m, ok, nil
}

func (r *stubMatchRepo) Create(_ context.Context, m match.Match) error {
	r.matches[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *stubMatchRepo) UpdateStatus(_ context.Context, id string, status match.Status) error {
	m := r.matches[id]
	m.Status = status
	r.matches[id] = m
	return nil
}

func (r *stubMatchRepo) UpdateChampionPhoto(_ context.Context, id, photoURL string) error {
	m := r.matches[id]
	m.ChampionPhotoURL = photoURL
	r.matches[id] = m
	return nil
}

func (r *stubMatchRepo) UpdateTeams(_ context.Context, id string, teams []match.Team) error {
	m := r.matches[id]
	m.Teams = teams
	r.matches[id] = m
	return nil
}

func (r *stubMatchRepo) ReplaceGames(_ context.Context, id string, games []match.Game) error {
	m := r.matches[id]
	m.Games = games
	r.matches[id] = m
	return nil
}

func (r *stubMatchRepo) UpdateGame(_ context.Context, matchID string, game match.Game) error {
	m := r.matches[matchID]
	for i := range m.Games {
		if m.Games[i].ID == game.ID {
			m.Games[i] = game
			r.matches[matchID] = m
			return nil
		}
	}
	return fmt.Errorf("game %s not found", game.ID)
}

func (r *stubMatchRepo) InsertGoal(_ context.Context, matchID string, goal match.Goal) error {
	m := r.matches[matchID]
	m.Goals = append(m.Goals, goal)
	r.matches[matchID] = m
	return nil
}

func (r *stubMatchRepo) UpdateGoal(_ context.Context, matchID string, goal match.Goal) error {
	m := r.matches[matchID]
	for i := range m.Goals {
		if m.Goals[i].ID == goal.ID {
			m.Goals[i] = goal
			r.matches[matchID] = m
			return nil
		}
	}
	return fmt.Errorf("goal %s not found", goal.ID)
}

func (r *stubMatchRepo) ClearGoals(_ context.Context, matchID string) error {
	m := r.matches[matchID]
	m.Goals = nil
	r.matches[matchID] = m
	return nil
}

type stubHallOfFameRepo struct {
	entries []halloffame.Entry
}

func (r *stubHallOfFameRepo) List(context.Context) ([]halloffame.Entry, error) {
	return append([]halloffame.Entry(nil), r.entries...), nil
}

func (r *stubHallOfFameRepo) ListByMonth(_ context.Context, month string) ([]halloffame.Entry, error) {
	var out []halloffame.Entry
	for _, e := range r.entries {
		if e.Month == month {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubHallOfFameRepo) Create(_ context.Context, entry halloffame.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

type stubPresetRepo struct {
	presets map[string]preset.Preset
}

func newStubPresetRepo() *stubPresetRepo {
	return &stubPresetRepo{presets: map[string]preset.Preset{}}
}

func (r *stubPresetRepo) List(context.Context) ([]preset.Preset, error) {
	out := make([]preset.Preset, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPresetRepo) GetByID(_ context.Context, id string) (preset.Preset, bool, error) {
	p, ok := r.presets[id]
	return p, ok, nil
}

func (r *stubPresetRepo) Create(_ context.Context, p preset.Preset) error {
	r.presets[p.ID] = p
	return nil
}

func (r *stubPresetRepo) Update(_ context.Context, p preset.Preset) error {
	r.presets[p.ID] = p
	return nil
}

func (r *stubPresetRepo) Delete(_ context.Context, id string) error {
	delete(r.presets, id)
	return nil
}

type stubGrantRepo struct {
	grants map[string][]string
}

func newStubGrantRepo() *stubGrantRepo {
	return &stubGrantRepo{grants: map[string][]string{}}
}

func (r *stubGrantRepo) ListByPlayer(_ context.Context, playerID string) ([]string, error) {
	return append([]string(nil), r.grants[playerID]...), nil
}

func (r *stubGrantRepo) Grant(_ context.Context, playerID, achievementID string) error {
	for _, id := range r.grants[playerID] {
		if id == achievementID {
			return nil
		}
	}
	r.grants[playerID] = append(r.grants[playerID], achievementID)
	return nil
}

func (r *stubGrantRepo) Revoke(_ context.Context, playerID, achievementID string) error {
	kept := r.grants[playerID][:0]
	for _, id := range r.grants[playerID] {
		if id != achievementID {
			kept = append(kept, id)
		}
	}
	r.grants[playerID] = kept
	return nil
}

var (
	_ player.Repository           = (*stubPlayerRepo)(nil)
	_ match.Repository            = (*stubMatchRepo)(nil)
	_ halloffame.Repository       = (*stubHallOfFameRepo)(nil)
	_ preset.Repository           = (*stubPresetRepo)(nil)
	_ achievement.GrantRepository = (*stubGrantRepo)(nil)
)
