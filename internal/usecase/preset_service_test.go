package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/peladahub/pelada/internal/domain/player"
)

func newPresetServiceForTest(players ...player.Player) (*PresetService, *stubPresetRepo) {
	presetRepo := newStubPresetRepo()
	svc := NewPresetService(presetRepo, newStubPlayerRepo(players...), &seqIDGen{prefix: "ps"})
	return svc, presetRepo
}

func TestPresetService_CreateValidatesPlayers(t *testing.T) {
	svc, _ := newPresetServiceForTest(
		player.Player{ID: "p1", Name: "Um"},
		player.Player{ID: "p2", Name: "Dois"},
	)

	created, err := svc.Create(context.Background(), " Quarta ", []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("create preset: %v", err)
	}
	if created.ID != "ps-1" {
		t.Fatalf("unexpected preset id: %s", created.ID)
	}
	if created.Name != "Quarta" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}

	_, err = svc.Create(context.Background(), "Sabado", []string{"p1", "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	_, err = svc.Create(context.Background(), "", []string{"p1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
}

func TestPresetService_UpdateKeepsUnchangedFields(t *testing.T) {
	svc, _ := newPresetServiceForTest(
		player.Player{ID: "p1", Name: "Um"},
		player.Player{ID: "p2", Name: "Dois"},
	)

	created, err := svc.Create(context.Background(), "Quarta", []string{"p1"})
	if err != nil {
		t.Fatalf("create preset: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, "", []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("update preset: %v", err)
	}
	if updated.Name != "Quarta" {
		t.Fatalf("expected name to survive empty update, got %q", updated.Name)
	}
	if len(updated.PlayerIDs) != 2 {
		t.Fatalf("expected roster replaced, got %v", updated.PlayerIDs)
	}

	_, err = svc.Update(context.Background(), "missing", "Nome", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown preset, got %v", err)
	}
}

func TestPresetService_Delete(t *testing.T) {
	svc, repo := newPresetServiceForTest(player.Player{ID: "p1", Name: "Um"})

	created, err := svc.Create(context.Background(), "Quarta", []string{"p1"})
	if err != nil {
		t.Fatalf("create preset: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete preset: %v", err)
	}
	if _, found, _ := repo.GetByID(context.Background(), created.ID); found {
		t.Fatalf("expected preset removed")
	}

	if err := svc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}
