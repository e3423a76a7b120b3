package prediction

import "context"

// Repository describes prediction persistence needs from use cases.
type Repository interface {
	// UpsertBatch inserts every prediction in one statement, refreshing
	// all columns except the fixture id on conflict.
	UpsertBatch(ctx context.Context, predictions []Prediction) error
	ListFixtureIDs(ctx context.Context) ([]int64, error)
}
