package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]Player, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	// BulkUpdate persists accumulator and rating changes for many players at
	// once, used by match finish and monthly settlement.
	BulkUpdate(ctx context.Context, players []Player) error
}
