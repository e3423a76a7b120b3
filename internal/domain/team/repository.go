package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// UpsertBatch inserts every team in one statement, refreshing all
	// columns except the primary key on conflict.
	UpsertBatch(ctx context.Context, teams []Team) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// ListCleanNamesDesc returns every stored clean_name ordered
	// descending. Rows whose clean_name column is NULL come back nil.
	ListCleanNamesDesc(ctx context.Context) ([]*string, error)
}
