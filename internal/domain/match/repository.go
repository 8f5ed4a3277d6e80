package match

import "context"

// Repository describes match persistence needs from use cases. The store is
// a dumb collection store: every invariant (single live game, phase gating)
// is enforced by the engine before it writes.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateChampionPhoto(ctx context.Context, id, photoURL string) error
	UpdateTeams(ctx context.Context, id string, teams []Team) error
	// ReplaceGames swaps the full game list, used by publish, cancel and
	// tie-break insertion.
	ReplaceGames(ctx context.Context, id string, games []Game) error
	UpdateGame(ctx context.Context, matchID string, game Game) error
	InsertGoal(ctx context.Context, matchID string, goal Goal) error
	UpdateGoal(ctx context.Context, matchID string, goal Goal) error
	ClearGoals(ctx context.Context, matchID string) error
}
