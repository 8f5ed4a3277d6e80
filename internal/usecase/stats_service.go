package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/peladahub/pelada/internal/domain/achievement"
	"github.com/peladahub/pelada/internal/domain/halloffame"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/platform/cache"
)

const statsCachePrefix = "stats:"

// LeaderboardRow is one player on a dashboard leaderboard.
type LeaderboardRow struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Value    int    `json:"value"`
}

// Dashboard is the group's landing view: headline counts and the current
// leaderboards.
type Dashboard struct {
	PlayerCount     int                `json:"player_count"`
	FinishedMatches int                `json:"finished_matches"`
	TopScorers      []LeaderboardRow   `json:"top_scorers"`
	TopAssists      []LeaderboardRow   `json:"top_assists"`
	MostWins        []LeaderboardRow   `json:"most_wins"`
	RecentTitles    []halloffame.Entry `json:"recent_titles"`
}

// StatsService derives career statistics, achievements and the dashboard
// from finished events. Everything here is read-mostly, so results are
// cached behind a TTL store.
type StatsService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
	hofRepo    halloffame.Repository
	grantRepo  achievement.GrantRepository
	cache      *cache.Store
}

func NewStatsService(
	playerRepo player.Repository,
	matchRepo match.Repository,
	hofRepo halloffame.Repository,
	grantRepo achievement.GrantRepository,
	cacheStore *cache.Store,
) *StatsService {
	return &StatsService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		hofRepo:    hofRepo,
		grantRepo:  grantRepo,
		cache:      cacheStore,
	}
}

// CareerStats aggregates one player's record over every finished event.
func (s *StatsService) CareerStats(ctx context.Context, playerID string) (achievement.CareerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.CareerStats")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return achievement.CareerStats{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	value, err := s.cache.GetOrLoad(ctx, statsCachePrefix+"career:"+playerID, func(ctx context.Context) (any, error) {
		return s.loadCareerStats(ctx, playerID)
	})
	if err != nil {
		return achievement.CareerStats{}, err
	}
	return value.(achievement.CareerStats), nil
}

func (s *StatsService) loadCareerStats(ctx context.Context, playerID string) (achievement.CareerStats, error) {
	if _, found, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return achievement.CareerStats{}, fmt.Errorf("get player: %w", err)
	} else if !found {
		return achievement.CareerStats{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return achievement.CareerStats{}, fmt.Errorf("list matches: %w", err)
	}
	titles, err := s.hofRepo.List(ctx)
	if err != nil {
		return achievement.CareerStats{}, fmt.Errorf("list hall of fame: %w", err)
	}
	return achievement.Aggregate(playerID, matches, titles), nil
}

// Achievements evaluates the badge catalog for one player.
func (s *StatsService) Achievements(ctx context.Context, playerID string) ([]achievement.PlayerAchievement, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.Achievements")
	defer span.End()

	stats, err := s.CareerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	grantedIDs, err := s.grantRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list achievement grants: %w", err)
	}
	granted := make(map[string]bool, len(grantedIDs))
	for _, id := range grantedIDs {
		granted[id] = true
	}
	return achievement.Evaluate(stats, granted), nil
}

// GrantAchievement manually awards a badge to a player.
func (s *StatsService) GrantAchievement(ctx context.Context, playerID, achievementID string) error {
	ctx, span := startUsecaseSpan(ctx, "StatsService.GrantAchievement")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	achievementID = strings.TrimSpace(achievementID)
	if playerID == "" || achievementID == "" {
		return fmt.Errorf("%w: player_id and achievement_id are required", ErrInvalidInput)
	}
	if !achievement.ValidID(achievementID) {
		return fmt.Errorf("%w: unknown achievement %s", ErrInvalidInput, achievementID)
	}
	if _, found, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return fmt.Errorf("get player: %w", err)
	} else if !found {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	if err := s.grantRepo.Grant(ctx, playerID, achievementID); err != nil {
		return fmt.Errorf("grant achievement: %w", err)
	}
	s.cache.DeletePrefix(ctx, statsCachePrefix)
	return nil
}

// RevokeAchievement removes a manual badge grant.
func (s *StatsService) RevokeAchievement(ctx context.Context, playerID, achievementID string) error {
	ctx, span := startUsecaseSpan(ctx, "StatsService.RevokeAchievement")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	achievementID = strings.TrimSpace(achievementID)
	if playerID == "" || achievementID == "" {
		return fmt.Errorf("%w: player_id and achievement_id are required", ErrInvalidInput)
	}
	if err := s.grantRepo.Revoke(ctx, playerID, achievementID); err != nil {
		return fmt.Errorf("revoke achievement: %w", err)
	}
	s.cache.DeletePrefix(ctx, statsCachePrefix)
	return nil
}

// HallOfFame lists every monthly title, newest month first.
func (s *StatsService) HallOfFame(ctx context.Context) ([]halloffame.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.HallOfFame")
	defer span.End()

	entries, err := s.hofRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hall of fame: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Month > entries[j].Month
	})
	return entries, nil
}

// Dashboard builds the landing view. The three stores are independent, so
// they are fetched concurrently.
func (s *StatsService) Dashboard(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.Dashboard")
	defer span.End()

	value, err := s.cache.GetOrLoad(ctx, statsCachePrefix+"dashboard", func(ctx context.Context) (any, error) {
		return s.loadDashboard(ctx)
	})
	if err != nil {
		return Dashboard{}, err
	}
	return value.(Dashboard), nil
}

func (s *StatsService) loadDashboard(ctx context.Context) (Dashboard, error) {
	var (
		players    []player.Player
		matches    []match.Match
		titles     []halloffame.Entry
		playersErr error
		matchesErr error
		titlesErr  error
	)

	var wg conc.WaitGroup
	wg.Go(func() { players, playersErr = s.playerRepo.List(ctx) })
	wg.Go(func() { matches, matchesErr = s.matchRepo.List(ctx) })
	wg.Go(func() { titles, titlesErr = s.hofRepo.List(ctx) })
	wg.Wait()

	if playersErr != nil {
		return Dashboard{}, fmt.Errorf("list players: %w", playersErr)
	}
	if matchesErr != nil {
		return Dashboard{}, fmt.Errorf("list matches: %w", matchesErr)
	}
	if titlesErr != nil {
		return Dashboard{}, fmt.Errorf("list hall of fame: %w", titlesErr)
	}

	names := make(map[string]string, len(players))
	order := make(map[string]int, len(players))
	for i, p := range players {
		names[p.ID] = p.Name
		order[p.ID] = i
	}

	goals := make(map[string]int)
	assists := make(map[string]int)
	wins := make(map[string]int)
	finished := 0
	for _, m := range matches {
		if m.Status != match.StatusFinished {
			continue
		}
		finished++
		for _, goal := range m.Goals {
			goals[goal.ScorerID]++
			if goal.AssistID != "" {
				assists[goal.AssistID]++
			}
		}
		for _, t := range m.Teams {
			teamWins := 0
			for _, g := range m.Games {
				if g.Status != match.GameFinished || g.TieBreak {
					continue
				}
				if (g.HomeTeamID == t.ID && g.HomeScore > g.AwayScore) ||
					(g.AwayTeamID == t.ID && g.AwayScore > g.HomeScore) {
					teamWins++
				}
			}
			for _, p := range t.Players {
				wins[p.ID] += teamWins
			}
		}
	}

	sort.SliceStable(titles, func(i, j int) bool { return titles[i].Month > titles[j].Month })
	recent := titles
	if len(recent) > len(halloffame.AllCategories) {
		recent = recent[:len(halloffame.AllCategories)]
	}

	return Dashboard{
		PlayerCount:     len(players),
		FinishedMatches: finished,
		TopScorers:      topRows(goals, names, order),
		TopAssists:      topRows(assists, names, order),
		MostWins:        topRows(wins, names, order),
		RecentTitles:    recent,
	}, nil
}

const leaderboardSize = 5

func topRows(values map[string]int, names map[string]string, order map[string]int) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(values))
	for id, v := range values {
		if v == 0 {
			continue
		}
		rows = append(rows, LeaderboardRow{PlayerID: id, Name: names[id], Value: v})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return order[rows[i].PlayerID] < order[rows[j].PlayerID]
	})
	if len(rows) > leaderboardSize {
		rows = rows[:leaderboardSize]
	}
	return rows
}
