package player

import (
	"math"
	"testing"
)

func TestWeightsForSumToOne(t *testing.T) {
	t.Parallel()

	positions := []Position{
		PositionGoalkeeper,
		PositionDefender,
		PositionMidfielder,
		PositionForward,
		PositionUnset,
	}
	for _, pos := range positions {
		w := WeightsFor(pos)
		sum := w.Pace + w.Shooting + w.Passing + w.Defending
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("weights for %q sum to %f, want 1.0", pos, sum)
		}
	}
}

func TestWeightedOverallIsDotProduct(t *testing.T) {
	t.Parallel()

	attrs := Attributes{Pace: 70, Shooting: 85, Passing: 60, Defending: 40}
	for pos := range AllPositions {
		w := WeightsFor(pos)
		want := 70*w.Pace + 85*w.Shooting + 60*w.Passing + 40*w.Defending
		got := WeightedOverall(pos, attrs)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("weighted overall for %q = %f, want %f", pos, got, want)
		}
	}
}

func TestWeightedOverallUnknownPositionFallsBack(t *testing.T) {
	t.Parallel()

	attrs := Attributes{Pace: 60, Shooting: 70, Passing: 80, Defending: 90}
	got := WeightedOverall(Position("LIBERO"), attrs)
	if math.Abs(got-75.0) > 1e-9 {
		t.Fatalf("fallback overall = %f, want 75.0", got)
	}
}

func TestGenerateAttributesRoundTrip(t *testing.T) {
	t.Parallel()

	// Below 48 the attribute floors make some targets unreachable with pace
	// pinned at 80 (a forward's minimum profile already rates 46.75), so the
	// round-trip guarantee starts where every position can reach the target.
	for target := 48; target <= 95; target++ {
		for pos := range AllPositions {
			attrs := GenerateAttributes(target, pos)
			if attrs.Pace != 80 {
				t.Fatalf("pace for target=%d pos=%s is %d, want 80", target, pos, attrs.Pace)
			}
			assertAttributeBounds(t, attrs, target, pos)

			got := RoundedOverall(pos, attrs)
			if diff := got - target; diff < -1 || diff > 1 {
				t.Fatalf("round trip target=%d pos=%s yielded %d (attrs %+v)", target, pos, got, attrs)
			}
		}
	}
}

func assertAttributeBounds(t *testing.T, attrs Attributes, target int, pos Position) {
	t.Helper()

	if attrs.Shooting < attributeFloor || attrs.Shooting > attributeCeiling {
		t.Fatalf("shooting out of bounds for target=%d pos=%s: %d", target, pos, attrs.Shooting)
	}
	if attrs.Passing < attributeFloor || attrs.Passing > attributeCeiling {
		t.Fatalf("passing out of bounds for target=%d pos=%s: %d", target, pos, attrs.Passing)
	}
	if attrs.Defending < defendingFloor || attrs.Defending > attributeCeiling {
		t.Fatalf("defending out of bounds for target=%d pos=%s: %d", target, pos, attrs.Defending)
	}
}

func TestGenerateAttributesGoalkeeperProfile(t *testing.T) {
	t.Parallel()

	attrs := GenerateAttributes(70, PositionGoalkeeper)
	if attrs.Defending <= attrs.Shooting {
		t.Fatalf("goalkeeper profile should favor defending over shooting: %+v", attrs)
	}
	if got := RoundedOverall(PositionGoalkeeper, attrs); got < 69 || got > 71 {
		t.Fatalf("goalkeeper round trip yielded %d, want 70±1", got)
	}
}
