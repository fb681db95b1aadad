package domain

import "context"

// Transactor runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction. If fn returns an
// error the transaction is rolled back and the error is returned unchanged.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
