// Package txn defines the unit-of-work boundary shared by the domain services.
package txn

import "context"

// Transactor runs fn as one atomic unit of work. Repositories called with the
// context passed to fn take part in the same unit; any error returned by fn
// rolls back every mutation made through them.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
