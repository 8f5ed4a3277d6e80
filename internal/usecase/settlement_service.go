package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/peladahub/pelada/internal/domain/halloffame"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/domain/rating"
	idgen "github.com/peladahub/pelada/internal/platform/id"
)

const defaultSettlementWorkers = 4

// PlayerSettlement is the before/after view of one player in a monthly
// settlement run.
type PlayerSettlement struct {
	PlayerID   string            `json:"player_id"`
	Name       string            `json:"name"`
	Before     player.Attributes `json:"before"`
	After      player.Attributes `json:"after"`
	OldOverall int               `json:"old_overall"`
	NewOverall int               `json:"new_overall"`
	Changed    bool              `json:"changed"`
}

// SettlementResult is one full monthly run: every player's movement plus
// the month's hall of fame titles.
type SettlementResult struct {
	Month     string             `json:"month"`
	Players   []PlayerSettlement `json:"players"`
	Titles    []halloffame.Entry `json:"titles"`
	Committed bool               `json:"committed"`
}

// SettlementService converts accumulated rating deltas into permanent
// attribute changes once a month. Preview and Commit run the identical
// computation; only Commit persists.
type SettlementService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
	hofRepo    halloffame.Repository
	idGen      idgen.Generator
	workers    int
	now        func() time.Time
}

func NewSettlementService(
	playerRepo player.Repository,
	matchRepo match.Repository,
	hofRepo halloffame.Repository,
	idGen idgen.Generator,
	workers int,
) *SettlementService {
	if workers <= 0 {
		workers = defaultSettlementWorkers
	}
	return &SettlementService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		hofRepo:    hofRepo,
		idGen:      idGen,
		workers:    workers,
		now:        time.Now,
	}
}

// Preview computes the settlement for the given month without persisting
// anything, for operator confirmation.
func (s *SettlementService) Preview(ctx context.Context, month string) (SettlementResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SettlementService.Preview")
	defer span.End()

	return s.compute(ctx, month)
}

// Commit runs the same computation as Preview and persists it: new
// attributes and overalls, rating history entries, reset accumulators, and
// the month's hall of fame titles. A month can be committed once.
func (s *SettlementService) Commit(ctx context.Context, month string) (SettlementResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SettlementService.Commit")
	defer span.End()

	result, err := s.compute(ctx, month)
	if err != nil {
		return SettlementResult{}, err
	}

	existing, err := s.hofRepo.ListByMonth(ctx, result.Month)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("check settled months: %w", err)
	}
	if len(existing) > 0 {
		return SettlementResult{}, fmt.Errorf("%w: month %s is already settled", ErrConflict, result.Month)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("list players: %w", err)
	}
	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	settledAt := s.now()
	updated := make([]player.Player, 0, len(result.Players))
	for _, row := range result.Players {
		p, ok := byID[row.PlayerID]
		if !ok {
			continue
		}
		p.Attributes = row.After
		if row.NewOverall != p.Overall {
			p.Overall = row.NewOverall
			p.RatingHistory = append(p.RatingHistory, player.RatingSnapshot{
				Date:    settledAt,
				Overall: row.NewOverall,
			})
		}
		p.Accumulators = player.Accumulators{}
		updated = append(updated, p)
	}
	if len(updated) > 0 {
		if err := s.playerRepo.BulkUpdate(ctx, updated); err != nil {
			return SettlementResult{}, fmt.Errorf("store settled players: %w", err)
		}
	}

	for _, title := range result.Titles {
		if err := s.hofRepo.Create(ctx, title); err != nil {
			return SettlementResult{}, fmt.Errorf("store hall of fame entry: %w", err)
		}
	}

	result.Committed = true
	return result, nil
}

func (s *SettlementService) compute(ctx context.Context, month string) (SettlementResult, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		month = s.now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return SettlementResult{}, fmt.Errorf("%w: month must look like 2006-01", ErrInvalidInput)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("list players: %w", err)
	}

	rows := make([]PlayerSettlement, len(players))
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, p := range players {
		i, p := i, p
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			settled := rating.Settle(p)
			rows[i] = PlayerSettlement{
				PlayerID:   p.ID,
				Name:       p.Name,
				Before:     p.Attributes,
				After:      settled.Attributes,
				OldOverall: p.Overall,
				NewOverall: settled.Overall,
				Changed:    settled.Changed,
			}
		}); err != nil {
			workers.Done()
			return SettlementResult{}, fmt.Errorf("submit settlement task: %w", err)
		}
	}
	workers.Wait()

	titles, err := s.monthlyTitles(ctx, month, players)
	if err != nil {
		return SettlementResult{}, err
	}

	return SettlementResult{Month: month, Players: rows, Titles: titles}, nil
}

// monthlyTitles picks the month's category winners from its finished
// events. Ties go to the player encountered first in roster order.
func (s *SettlementService) monthlyTitles(ctx context.Context, month string, players []player.Player) ([]halloffame.Entry, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	type tally struct {
		wins, goals, assists, cleanSheets int
	}
	counts := make(map[string]*tally, len(players))
	order := make(map[string]int, len(players))
	for i, p := range players {
		counts[p.ID] = &tally{}
		order[p.ID] = i
	}

	for _, m := range matches {
		if m.Status != match.StatusFinished || m.Date.Format("2006-01") != month {
			continue
		}
		for _, t := range m.Teams {
			for _, g := range m.Games {
				if g.Status != match.GameFinished || g.TieBreak {
					continue
				}
				var teamScore, oppScore int
				switch t.ID {
				case g.HomeTeamID:
					teamScore, oppScore = g.HomeScore, g.AwayScore
				case g.AwayTeamID:
					teamScore, oppScore = g.AwayScore, g.HomeScore
				default:
					continue
				}
				for _, p := range t.Players {
					row, ok := counts[p.ID]
					if !ok {
						continue
					}
					if teamScore > oppScore {
						row.wins++
					}
					if oppScore == 0 {
						row.cleanSheets++
					}
				}
			}
		}
		for _, goal := range m.Goals {
			if row, ok := counts[goal.ScorerID]; ok {
				row.goals++
			}
			if goal.AssistID != "" {
				if row, ok := counts[goal.AssistID]; ok {
					row.assists++
				}
			}
		}
	}

	pick := func(category halloffame.Category, value func(*tally) int) (halloffame.Entry, bool) {
		bestID, bestValue := "", 0
		ids := make([]string, 0, len(counts))
		for id := range counts {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return order[ids[i]] < order[ids[j]] })
		for _, id := range ids {
			if v := value(counts[id]); v > bestValue {
				bestID, bestValue = id, v
			}
		}
		if bestID == "" {
			return halloffame.Entry{}, false
		}
		return halloffame.Entry{
			Month:    month,
			Category: category,
			PlayerID: bestID,
			Value:    bestValue,
		}, true
	}

	var titles []halloffame.Entry
	categories := []struct {
		category halloffame.Category
		value    func(*tally) int
	}{
		{halloffame.CategoryWins, func(t *tally) int { return t.wins }},
		{halloffame.CategoryGoals, func(t *tally) int { return t.goals }},
		{halloffame.CategoryAssists, func(t *tally) int { return t.assists }},
		{halloffame.CategoryCleanSheets, func(t *tally) int { return t.cleanSheets }},
	}
	for _, c := range categories {
		entry, ok := pick(c.category, c.value)
		if !ok {
			continue
		}
		entryID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate hall of fame id: %w", err)
		}
		entry.ID = entryID
		titles = append(titles, entry)
	}
	return titles, nil
}
