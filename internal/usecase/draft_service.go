package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peladahub/pelada/internal/domain/draft"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	idgen "github.com/peladahub/pelada/internal/platform/id"
)

// minLinePlayersPerTeam is the smallest line (non-goalkeeper) roster the
// draft accepts per team. The balancer itself performs no size checks.
const minLinePlayersPerTeam = 3

type CreateDraftInput struct {
	Date      time.Time
	Location  string
	Type      match.Type
	PlayerIDs []string
}

// DraftService turns a player selection into a balanced draft-state event.
// Rosters stay editable until the event is published.
type DraftService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewDraftService(playerRepo player.Repository, matchRepo match.Repository, idGen idgen.Generator) *DraftService {
	return &DraftService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// Preview balances the pool without persisting anything, for the operator to
// inspect before committing to a draft.
func (s *DraftService) Preview(ctx context.Context, matchType match.Type, playerIDs []string) ([]match.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftService.Preview")
	defer span.End()

	pool, err := s.loadPool(ctx, matchType, playerIDs)
	if err != nil {
		return nil, err
	}
	teams, err := draft.BuildTeams(pool, matchType.TeamCount())
	if err != nil {
		return nil, fmt.Errorf("balance teams: %w", err)
	}
	return teams, nil
}

// CreateDraft balances the pool and stores the result as a DRAFT event.
func (s *DraftService) CreateDraft(ctx context.Context, input CreateDraftInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftService.CreateDraft")
	defer span.End()

	pool, err := s.loadPool(ctx, input.Type, input.PlayerIDs)
	if err != nil {
		return match.Match{}, err
	}
	teams, err := draft.BuildTeams(pool, input.Type.TeamCount())
	if err != nil {
		return match.Match{}, fmt.Errorf("balance teams: %w", err)
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	for i := range teams {
		teamID, err := s.idGen.NewID()
		if err != nil {
			return match.Match{}, fmt.Errorf("generate team id: %w", err)
		}
		teams[i].ID = teamID
		teams[i].MatchID = matchID
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	m := match.Match{
		ID:       matchID,
		Date:     date,
		Location: strings.TrimSpace(input.Location),
		Type:     input.Type,
		Status:   match.StatusDraft,
		Teams:    teams,
	}
	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("create draft match: %w", err)
	}
	return m, nil
}

// MovePlayer transfers a player between two teams of a draft-state event and
// re-derives both teams' published numbers. Published events reject edits.
func (s *DraftService) MovePlayer(ctx context.Context, matchID, playerID, toTeamID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "DraftService.MovePlayer")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)
	toTeamID = strings.TrimSpace(toTeamID)
	if matchID == "" || playerID == "" || toTeamID == "" {
		return match.Match{}, fmt.Errorf("%w: match_id, player_id and team_id are required", ErrInvalidInput)
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	if m.Status != match.StatusDraft {
		return match.Match{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrMatchNotDraft)
	}

	fromIdx, playerIdx, toIdx := -1, -1, -1
	for i, t := range m.Teams {
		if t.ID == toTeamID {
			toIdx = i
		}
		for j, p := range t.Players {
			if p.ID == playerID {
				fromIdx, playerIdx = i, j
			}
		}
	}
	if toIdx == -1 {
		return match.Match{}, fmt.Errorf("%w: team %s", ErrNotFound, toTeamID)
	}
	if fromIdx == -1 {
		return match.Match{}, fmt.Errorf("%w: player %s is not drafted in match %s", ErrNotFound, playerID, matchID)
	}
	if fromIdx == toIdx {
		return m, nil
	}

	from := &m.Teams[fromIdx]
	moved := from.Players[playerIdx]
	from.Players = append(from.Players[:playerIdx], from.Players[playerIdx+1:]...)
	m.Teams[toIdx].Players = append(m.Teams[toIdx].Players, moved)
	draft.RecalcTeam(&m.Teams[fromIdx])
	draft.RecalcTeam(&m.Teams[toIdx])

	if err := s.matchRepo.UpdateTeams(ctx, m.ID, m.Teams); err != nil {
		return match.Match{}, fmt.Errorf("save roster edit: %w", err)
	}
	return m, nil
}

func (s *DraftService) loadPool(ctx context.Context, matchType match.Type, playerIDs []string) ([]player.Player, error) {
	if err := matchType.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ids := make([]string, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: empty player id in selection", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: player %s selected twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	pool, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load draft pool: %w", err)
	}
	if len(pool) != len(ids) {
		return nil, fmt.Errorf("%w: %d of %d selected players exist", ErrNotFound, len(pool), len(ids))
	}

	line := 0
	for _, p := range pool {
		if p.Position != player.PositionGoalkeeper {
			line++
		}
	}
	if line < matchType.TeamCount()*minLinePlayersPerTeam {
		return nil, fmt.Errorf("%w: %s needs at least %d line players, got %d",
			ErrInvalidInput, matchType, matchType.TeamCount()*minLinePlayersPerTeam, line)
	}

	return pool, nil
}
