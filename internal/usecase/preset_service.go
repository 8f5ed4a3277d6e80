package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/domain/preset"
	idgen "github.com/peladahub/pelada/internal/platform/id"
)

// PresetService manages reusable player selections for the draft screen.
type PresetService struct {
	presetRepo preset.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
}

func NewPresetService(presetRepo preset.Repository, playerRepo player.Repository, idGen idgen.Generator) *PresetService {
	return &PresetService{
		presetRepo: presetRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
	}
}

func (s *PresetService) List(ctx context.Context) ([]preset.Preset, error) {
	ctx, span := startUsecaseSpan(ctx, "PresetService.List")
	defer span.End()

	presets, err := s.presetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return presets, nil
}

func (s *PresetService) Create(ctx context.Context, name string, playerIDs []string) (preset.Preset, error) {
	ctx, span := startUsecaseSpan(ctx, "PresetService.Create")
	defer span.End()

	p := preset.Preset{Name: strings.TrimSpace(name), PlayerIDs: playerIDs}
	if err := p.Validate(); err != nil {
		return preset.Preset{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkPlayers(ctx, playerIDs); err != nil {
		return preset.Preset{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return preset.Preset{}, fmt.Errorf("generate preset id: %w", err)
	}
	p.ID = id
	if err := s.presetRepo.Create(ctx, p); err != nil {
		return preset.Preset{}, fmt.Errorf("create preset: %w", err)
	}
	return p, nil
}

func (s *PresetService) Update(ctx context.Context, id, name string, playerIDs []string) (preset.Preset, error) {
	ctx, span := startUsecaseSpan(ctx, "PresetService.Update")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return preset.Preset{}, fmt.Errorf("%w: preset id is required", ErrInvalidInput)
	}
	existing, found, err := s.presetRepo.GetByID(ctx, id)
	if err != nil {
		return preset.Preset{}, fmt.Errorf("get preset: %w", err)
	}
	if !found {
		return preset.Preset{}, fmt.Errorf("%w: preset %s", ErrNotFound, id)
	}

	if name = strings.TrimSpace(name); name != "" {
		existing.Name = name
	}
	if len(playerIDs) > 0 {
		if err := s.checkPlayers(ctx, playerIDs); err != nil {
			return preset.Preset{}, err
		}
		existing.PlayerIDs = playerIDs
	}
	if err := existing.Validate(); err != nil {
		return preset.Preset{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.presetRepo.Update(ctx, existing); err != nil {
		return preset.Preset{}, fmt.Errorf("update preset: %w", err)
	}
	return existing, nil
}

func (s *PresetService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "PresetService.Delete")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: preset id is required", ErrInvalidInput)
	}
	if err := s.presetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	return nil
}

func (s *PresetService) checkPlayers(ctx context.Context, playerIDs []string) error {
	found, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return fmt.Errorf("load preset players: %w", err)
	}
	if len(found) != len(playerIDs) {
		return fmt.Errorf("%w: %d of %d preset players exist", ErrNotFound, len(found), len(playerIDs))
	}
	return nil
}
