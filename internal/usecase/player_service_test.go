package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/peladahub/pelada/internal/domain/player"
)

func TestPlayerCreateStartsWithManualOverall(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newStubPlayerRepo()
	svc := NewPlayerService(repo, &seqIDGen{prefix: "p"})

	created, err := svc.Create(ctx, CreatePlayerInput{Name: "Rafa", Overall: 72})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Overall != 72 {
		t.Errorf("overall = %d, want 72", created.Overall)
	}
	if !created.Attributes.IsZero() {
		t.Errorf("attributes = %+v, want all zero before onboarding", created.Attributes)
	}

	if _, err := svc.Create(ctx, CreatePlayerInput{Name: "", Overall: 70}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("nameless create: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(ctx, CreatePlayerInput{Name: "Zero", Overall: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero overall: err = %v, want ErrInvalidInput", err)
	}
}

func TestCompleteOnboardingDerivesAttributesOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newStubPlayerRepo(player.Player{ID: "p1", Name: "Rafa", Overall: 72})
	svc := NewPlayerService(repo, &seqIDGen{prefix: "p"})

	onboarded, err := svc.CompleteOnboarding(ctx, "p1", player.PositionMidfielder, player.StylePlaymaker)
	if err != nil {
		t.Fatalf("onboarding: %v", err)
	}
	if onboarded.Attributes.IsZero() {
		t.Fatal("onboarding left attributes zero")
	}
	if onboarded.Attributes.Pace != 80 {
		t.Errorf("pace = %d, want the fixed 80", onboarded.Attributes.Pace)
	}
	if onboarded.Overall < 71 || onboarded.Overall > 73 {
		t.Errorf("derived overall = %d, want within 1 of 72", onboarded.Overall)
	}

	// A second run must refuse; attributes already exist.
	if _, err := svc.CompleteOnboarding(ctx, "p1", player.PositionForward, player.StyleFinisher); !errors.Is(err, ErrConflict) {
		t.Fatalf("repeat onboarding: err = %v, want ErrConflict", err)
	}
}

func TestUpdateRecomputesOverallFromAttributes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newStubPlayerRepo(player.Player{
		ID: "p1", Name: "Rafa", Position: player.PositionForward, Overall: 70,
		Attributes: player.Attributes{Pace: 80, Shooting: 70, Passing: 60, Defending: 40},
	})
	svc := NewPlayerService(repo, &seqIDGen{prefix: "p"})

	updated, err := svc.Update(ctx, "p1", UpdatePlayerInput{
		Attributes: player.Attributes{Pace: 80, Shooting: 90, Passing: 60, Defending: 40},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := player.RoundedOverall(player.PositionForward, updated.Attributes)
	if updated.Overall != want {
		t.Errorf("overall = %d, want recomputed %d", updated.Overall, want)
	}

	if _, err := svc.Update(ctx, "p1", UpdatePlayerInput{
		Attributes: player.Attributes{Pace: 120, Shooting: 90, Passing: 60, Defending: 40},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("out-of-range attribute: err = %v, want ErrInvalidInput", err)
	}

	if _, err := svc.Update(ctx, "missing", UpdatePlayerInput{Name: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing player: err = %v, want ErrNotFound", err)
	}
}

func TestProjectedOverallMatchesSettlementMath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newStubPlayerRepo(player.Player{
		ID: "p1", Name: "Rafa", Position: player.PositionForward, Overall: 69,
		Attributes:   player.Attributes{Pace: 80, Shooting: 70, Passing: 60, Defending: 40},
		Accumulators: player.Accumulators{Shooting: 8},
	})
	svc := NewPlayerService(repo, &seqIDGen{prefix: "p"})

	projected, err := svc.ProjectedOverall(ctx, "p1")
	if err != nil {
		t.Fatalf("projected overall: %v", err)
	}
	// +2 shooting is worth +1.2 weighted, lifting 69.0 to a rounded 70.
	if projected != 70 {
		t.Errorf("projected = %d, want 70", projected)
	}

	// Projection never writes.
	stored, _, _ := repo.GetByID(ctx, "p1")
	if stored.Overall != 69 || stored.Accumulators.Shooting != 8 {
		t.Errorf("player mutated by projection: %+v", stored)
	}
}
