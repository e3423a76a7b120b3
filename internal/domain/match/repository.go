package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	// CreateWithDetails inserts the match and its optional stats and
	// odds rows atomically. Nil stats or odds are not written.
	CreateWithDetails(ctx context.Context, m Match, stats *Stats, odds *Odds) error
	ListByFilter(ctx context.Context, filter Filter) ([]WithDetails, error)
}
