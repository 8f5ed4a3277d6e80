package player

import "math"

// Weights maps the four attributes to their share of the overall rating for
// a given position. Shares always sum to 1.0.
type Weights struct {
	Pace      float64
	Shooting  float64
	Passing   float64
	Defending float64
}

var weightsByPosition = map[Position]Weights{
	PositionGoalkeeper: {Pace: 0.20, Shooting: 0.05, Passing: 0.15, Defending: 0.60},
	PositionDefender:   {Pace: 0.20, Shooting: 0.10, Passing: 0.20, Defending: 0.50},
	PositionMidfielder: {Pace: 0.20, Shooting: 0.15, Passing: 0.50, Defending: 0.15},
	PositionForward:    {Pace: 0.20, Shooting: 0.60, Passing: 0.15, Defending: 0.05},
}

// WeightsFor returns the weight vector for a position. Unknown or unset
// positions fall back to equal weights.
func WeightsFor(position Position) Weights {
	if w, ok := weightsByPosition[position]; ok {
		return w
	}
	return Weights{Pace: 0.25, Shooting: 0.25, Passing: 0.25, Defending: 0.25}
}

// WeightedOverall computes the real-valued overall rating for an attribute
// set under the position's weight vector. Intermediate projections keep the
// fractional value; callers round only for display and storage.
func WeightedOverall(position Position, attrs Attributes) float64 {
	w := WeightsFor(position)
	return float64(attrs.Pace)*w.Pace +
		float64(attrs.Shooting)*w.Shooting +
		float64(attrs.Passing)*w.Passing +
		float64(attrs.Defending)*w.Defending
}

// RoundedOverall is WeightedOverall rounded to the nearest integer.
func RoundedOverall(position Position, attrs Attributes) int {
	return int(math.Round(WeightedOverall(position, attrs)))
}

const (
	generatedPace      = 80
	attributeFloor     = 40
	defendingFloor     = 15
	attributeCeiling   = 99
	correctionMaxSteps = 4
)

type attributeSkew struct {
	shooting  float64
	passing   float64
	defending float64
}

var skewByPosition = map[Position]attributeSkew{
	PositionGoalkeeper: {shooting: -20, passing: -5, defending: 15},
	PositionDefender:   {shooting: -10, passing: 0, defending: 10},
	PositionMidfielder: {shooting: -5, passing: 10, defending: -5},
	PositionForward:    {shooting: 10, passing: 0, defending: -15},
}

// GenerateAttributes back-derives a full attribute profile from a manual
// overall target. Pace is fixed at 80; shooting, passing and defending are
// seeded at the target, skewed into a position profile, then corrected so the
// weighted overall of the result reproduces the target. The rating function
// is linear in the attributes, so a single correction step lands exactly on
// target; further passes only redistribute whatever the [floor,99] clamps
// absorbed.
func GenerateAttributes(targetOverall int, position Position) Attributes {
	w := WeightsFor(position)
	skew := skewByPosition[position]

	target := float64(targetOverall)
	shooting := clampFloat(target+skew.shooting, attributeFloor, attributeCeiling)
	passing := clampFloat(target+skew.passing, attributeFloor, attributeCeiling)
	defending := clampFloat(target+skew.defending, defendingFloor, attributeCeiling)

	for range correctionMaxSteps {
		yielded := float64(generatedPace)*w.Pace +
			shooting*w.Shooting +
			passing*w.Passing +
			defending*w.Defending
		diff := target - yielded
		if math.Abs(diff) < 0.5 {
			break
		}

		freeWeight := 0.0
		if movable(shooting, attributeFloor, diff) {
			freeWeight += w.Shooting
		}
		if movable(passing, attributeFloor, diff) {
			freeWeight += w.Passing
		}
		if movable(defending, defendingFloor, diff) {
			freeWeight += w.Defending
		}
		if freeWeight == 0 {
			break
		}

		correction := diff / freeWeight
		if movable(shooting, attributeFloor, diff) {
			shooting = clampFloat(shooting+correction, attributeFloor, attributeCeiling)
		}
		if movable(passing, attributeFloor, diff) {
			passing = clampFloat(passing+correction, attributeFloor, attributeCeiling)
		}
		if movable(defending, defendingFloor, diff) {
			defending = clampFloat(defending+correction, defendingFloor, attributeCeiling)
		}
	}

	return Attributes{
		Pace:      generatedPace,
		Shooting:  int(math.Round(clampFloat(shooting, attributeFloor, attributeCeiling))),
		Passing:   int(math.Round(clampFloat(passing, attributeFloor, attributeCeiling))),
		Defending: int(math.Round(clampFloat(defending, defendingFloor, attributeCeiling))),
	}
}

func movable(value, floor, direction float64) bool {
	if direction > 0 {
		return value < attributeCeiling
	}
	return value > floor
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAttribute saturates a settled attribute into the persisted [1,99]
// range.
func ClampAttribute(v int) int {
	if v < 1 {
		return 1
	}
	if v > attributeCeiling {
		return attributeCeiling
	}
	return v
}
