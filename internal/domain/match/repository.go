package match

import (
	"context"
	"time"
)

// Repository exposes match storage. Update must be an atomic replace of the
// stored row so concurrent score refreshes cannot interleave partial writes.
type Repository interface {
	GetByID(ctx context.Context, id string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	ListByDay(ctx context.Context, day time.Time) ([]Match, error)
	Update(ctx context.Context, m Match) error
}
