package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/domain/rating"
	idgen "github.com/peladahub/pelada/internal/platform/id"
)

type CreatePlayerInput struct {
	Name        string
	Email       string
	Overall     int
	Position    player.Position
	PlayStyle   player.PlayStyle
	IsAdmin     bool
	PhotoURL    string
	ShirtNumber int
}

type UpdatePlayerInput struct {
	Name        string
	Email       string
	Position    player.Position
	PlayStyle   player.PlayStyle
	Attributes  player.Attributes
	PhotoURL    string
	ShirtNumber int
}

// PlayerService manages the roster. Players are created with a manual
// overall and zero attributes; the attributes are back-derived once, when
// the player completes onboarding by picking a position.
type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetByID(ctx context.Context, id string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.GetByID")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, found, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, id)
	}
	return p, nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Create")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.Overall <= 0 {
		return player.Player{}, fmt.Errorf("%w: overall must be positive", ErrInvalidInput)
	}
	if input.Position != "" {
		if err := input.Position.Validate(); err != nil {
			return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.Player{
		ID:          id,
		Name:        input.Name,
		Email:       input.Email,
		Position:    input.Position,
		PlayStyle:   input.PlayStyle,
		Overall:     input.Overall,
		IsAdmin:     input.IsAdmin,
		PhotoURL:    input.PhotoURL,
		ShirtNumber: input.ShirtNumber,
	}
	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return p, nil
}

func (s *PlayerService) Update(ctx context.Context, id string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.Update")
	defer span.End()

	p, err := s.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		p.Name = name
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		p.Email = email
	}
	if input.Position != "" {
		if err := input.Position.Validate(); err != nil {
			return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		p.Position = input.Position
	}
	if input.PlayStyle != "" {
		p.PlayStyle = input.PlayStyle
	}
	if input.PhotoURL != "" {
		p.PhotoURL = input.PhotoURL
	}
	if input.ShirtNumber != 0 {
		p.ShirtNumber = input.ShirtNumber
	}
	if !input.Attributes.IsZero() {
		for _, v := range []int{
			input.Attributes.Pace,
			input.Attributes.Shooting,
			input.Attributes.Passing,
			input.Attributes.Defending,
		} {
			if v < 1 || v > 99 {
				return player.Player{}, fmt.Errorf("%w: attributes must be in [1,99]", ErrInvalidInput)
			}
		}
		p.Attributes = input.Attributes
	}

	// The published overall follows the attributes as soon as they exist;
	// while they are still zero the manual value stands.
	if !p.Attributes.IsZero() {
		p.Overall = player.RoundedOverall(p.Position, p.Attributes)
	}

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return p, nil
}

// CompleteOnboarding records the position and play style a player picked and
// back-derives their attributes from the manual overall. It runs at most
// once: players whose attributes already exist are rejected.
func (s *PlayerService) CompleteOnboarding(ctx context.Context, id string, position player.Position, style player.PlayStyle) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.CompleteOnboarding")
	defer span.End()

	p, err := s.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, err
	}
	if err := position.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !p.Attributes.IsZero() {
		return player.Player{}, fmt.Errorf("%w: player %s already onboarded", ErrConflict, id)
	}

	p.Position = position
	p.PlayStyle = style
	p.Attributes = player.GenerateAttributes(p.Overall, position)
	p.Overall = player.RoundedOverall(position, p.Attributes)

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("save onboarded player: %w", err)
	}
	return p, nil
}

// ProjectedOverall previews what the next monthly settlement would publish
// for the player, without touching stored state.
func (s *PlayerService) ProjectedOverall(ctx context.Context, id string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.ProjectedOverall")
	defer span.End()

	p, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return rating.Settle(p).Overall, nil
}
