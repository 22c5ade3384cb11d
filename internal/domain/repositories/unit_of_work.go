package repositories

import "context"

// UnitOfWork executes a function within a single transaction scope. The
// transaction is committed when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
