package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/peladahub/pelada/internal/domain/player"
)

// Type fixes how many teams an event is played with.
type Type string

const (
	TypeTriangular   Type = "TRIANGULAR"
	TypeQuadrangular Type = "QUADRANGULAR"
)

func (t Type) TeamCount() int {
	switch t {
	case TypeTriangular:
		return 3
	case TypeQuadrangular:
		return 4
	default:
		return 0
	}
}

func (t Type) Validate() error {
	if t.TeamCount() == 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return nil
}

// Status is the lifecycle state of a whole event.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusOpen     Status = "OPEN"
	StatusFinished Status = "FINISHED"
)

// GameStatus is the lifecycle state of a single game.
type GameStatus string

const (
	GameWaiting  GameStatus = "WAITING"
	GameLive     GameStatus = "LIVE"
	GameFinished GameStatus = "FINISHED"
)

// Phase names a stage of the bracket. Only round-robin phases feed the
// points table.
type Phase string

const (
	PhaseOne        Phase = "PHASE_1"
	PhaseTwo        Phase = "PHASE_2"
	PhaseThirdPlace Phase = "THIRD_PLACE"
	PhaseFinal      Phase = "FINAL"
)

// IsKnockout reports whether games of this phase must produce a winner.
func (p Phase) IsKnockout() bool {
	return p == PhaseTwo || p == PhaseThirdPlace || p == PhaseFinal
}

// CountsForStandings reports whether finished games of this phase feed the
// points table. Knockout results never do, even though PHASE_2 pairings come
// from it.
func (p Phase) CountsForStandings() bool {
	return p == PhaseOne || p == PhaseTwo
}

// TeamTBD is the placeholder team reference on games whose participants are
// resolved only once an earlier phase completes.
const TeamTBD = "TBD"

var (
	ErrUnsupportedType    = errors.New("unsupported tournament type")
	ErrGameAlreadyLive    = errors.New("another game is already live")
	ErrGameNotLive        = errors.New("game is not live")
	ErrGameNotWaiting     = errors.New("game is not waiting")
	ErrShootoutUndecided  = errors.New("penalty shootout is not decided")
	ErrShootoutDecided    = errors.New("penalty shootout is already decided")
	ErrShootoutWrongSide  = errors.New("kick registered for the wrong side")
	ErrShootoutNotLevel   = errors.New("game is not level after normal time")
	ErrShootoutNoKicks    = errors.New("no kicks to undo")
	ErrTeamsNotResolved   = errors.New("game teams are not resolved yet")
	ErrMatchNotDraft      = errors.New("match is not in draft")
	ErrMatchNotOpen       = errors.New("match is not open")
	ErrMatchFinished      = errors.New("match is already finished")
	ErrGamesNotFinished   = errors.New("not all games are finished")
	ErrTieBreakNotAllowed = errors.New("tie-break game is not applicable")
)

// Team is an ephemeral lineup scoped to one event.
type Team struct {
	ID      string
	MatchID string
	Name    string
	Players []player.Player
	// AvgOverall is the mean overall of the line players only, goalkeepers
	// excluded.
	AvgOverall  float64
	StyleCounts map[player.PlayStyle]int
}

// HasPlayer reports whether the player is on this team's roster.
func (t Team) HasPlayer(playerID string) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Game is a single fixture inside an event.
type Game struct {
	ID         string
	MatchID    string
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
	Status     GameStatus
	Phase      Phase
	Sequence   int
	Shootout   *Shootout
	// TieBreak marks the operator-created penalty-only game used to split
	// 2nd and 3rd place before knockout seeding.
	TieBreak bool
}

// Resolved reports whether both participants are known.
func (g Game) Resolved() bool {
	return g.HomeTeamID != TeamTBD && g.AwayTeamID != TeamTBD &&
		g.HomeTeamID != "" && g.AwayTeamID != ""
}

// LevelAfterNormalTime reports whether the game needs a shootout to produce
// a winner.
func (g Game) LevelAfterNormalTime() bool {
	return g.HomeScore == g.AwayScore
}

// Goal is one scoring event inside a game. Goals are append-only; edits may
// only re-attribute scorer and assist.
type Goal struct {
	ID       string
	MatchID  string
	GameID   string
	TeamID   string
	ScorerID string
	AssistID string
	Minute   int
}

// Match is a whole pelada event with its teams, games and goals.
type Match struct {
	ID               string
	Date             time.Time
	Location         string
	Type             Type
	Status           Status
	Teams            []Team
	Games            []Game
	Goals            []Goal
	ChampionPhotoURL string
}

// GameByID returns the game with the given id.
func (m Match) GameByID(gameID string) (Game, bool) {
	for _, g := range m.Games {
		if g.ID == gameID {
			return g, true
		}
	}
	return Game{}, false
}

// TeamByID returns the team with the given id.
func (m Match) TeamByID(teamID string) (Team, bool) {
	for _, t := range m.Teams {
		if t.ID == teamID {
			return t, true
		}
	}
	return Team{}, false
}

// TeamOf returns the team the player belongs to in this event.
func (m Match) TeamOf(playerID string) (Team, bool) {
	for _, t := range m.Teams {
		if t.HasPlayer(playerID) {
			return t, true
		}
	}
	return Team{}, false
}

// LiveGame returns the currently live game, if any. At most one game per
// match may be live; the engine re-validates this on every start.
func (m Match) LiveGame() (Game, bool) {
	for _, g := range m.Games {
		if g.Status == GameLive {
			return g, true
		}
	}
	return Game{}, false
}

// GamesInPhase returns the games of a phase ordered as stored.
func (m Match) GamesInPhase(phase Phase) []Game {
	out := make([]Game, 0, len(m.Games))
	for _, g := range m.Games {
		if g.Phase == phase {
			out = append(out, g)
		}
	}
	return out
}

// PhaseFinished reports whether every game of the phase is finished. An
// empty phase counts as finished.
func (m Match) PhaseFinished(phase Phase) bool {
	for _, g := range m.Games {
		if g.Phase == phase && g.Status != GameFinished {
			return false
		}
	}
	return true
}

// GoalsByGame returns the goals recorded for one game.
func (m Match) GoalsByGame(gameID string) []Goal {
	out := make([]Goal, 0, len(m.Goals))
	for _, goal := range m.Goals {
		if goal.GameID == gameID {
			out = append(out, goal)
		}
	}
	return out
}
