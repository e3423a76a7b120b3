package fixture

import "context"

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	// UpsertBatch inserts every fixture in one statement, refreshing
	// all columns except the primary key and the venue columns on
	// conflict.
	UpsertBatch(ctx context.Context, fixtures []Fixture) error
	// ListIDsExcluding returns fixture ids not present in the excluded
	// set. An empty set returns every id.
	ListIDsExcluding(ctx context.Context, excluded []int64) ([]int64, error)
}
