package player

import (
	"fmt"
	"time"
)

// Position represents the role a player occupies on the pitch.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
	// PositionUnset marks a player that has not completed onboarding yet.
	PositionUnset Position = ""
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

func (p Position) Validate() error {
	if _, ok := AllPositions[p]; !ok {
		return fmt.Errorf("invalid position: %s", p)
	}
	return nil
}

// PlayStyle is a descriptive tag used by the team balancer to spread
// similar profiles across teams.
type PlayStyle string

const (
	StyleUnset     PlayStyle = ""
	StyleFinisher  PlayStyle = "FINISHER"
	StylePlaymaker PlayStyle = "PLAYMAKER"
	StyleDribbler  PlayStyle = "DRIBBLER"
	StyleAnchor    PlayStyle = "ANCHOR"
	StyleEngine    PlayStyle = "ENGINE"
	StyleSweeper   PlayStyle = "SWEEPER"
)

// Attributes are the four base skill values, each in [1,99].
type Attributes struct {
	Pace      int
	Shooting  int
	Passing   int
	Defending int
}

// IsZero reports whether no attribute has been set yet. A player created by
// the administrator form carries only a manual overall until onboarding
// derives a full attribute set.
func (a Attributes) IsZero() bool {
	return a.Pace == 0 && a.Shooting == 0 && a.Passing == 0 && a.Defending == 0
}

// Accumulators hold unbounded fractional rating deltas accrued between
// monthly settlements. They are never rounded or clamped mid-month.
type Accumulators struct {
	Pace      float64
	Shooting  float64
	Passing   float64
	Defending float64
}

func (a Accumulators) Add(other Accumulators) Accumulators {
	return Accumulators{
		Pace:      a.Pace + other.Pace,
		Shooting:  a.Shooting + other.Shooting,
		Passing:   a.Passing + other.Passing,
		Defending: a.Defending + other.Defending,
	}
}

// RatingSnapshot is one entry of a player's append-only overall history.
type RatingSnapshot struct {
	Date    time.Time
	Overall int
}

// Player is a roster member of the pelada group.
type Player struct {
	ID            string
	Name          string
	Email         string
	Position      Position
	PlayStyle     PlayStyle
	Attributes    Attributes
	Accumulators  Accumulators
	Overall       int
	RatingHistory []RatingSnapshot
	IsAdmin       bool
	PhotoURL      string
	ShirtNumber   int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Position != PositionUnset {
		if _, ok := AllPositions[p.Position]; !ok {
			return fmt.Errorf("invalid player position: %s", p.Position)
		}
	}
	if p.Overall <= 0 {
		return fmt.Errorf("player overall must be greater than zero")
	}

	return nil
}
