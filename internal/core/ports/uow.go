package ports

import "context"

// UnitOfWork executes fn inside a storage transaction. Every repository
// call made with the ctx passed to fn joins the transaction; the writes
// commit only when fn returns nil and roll back entirely otherwise.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
