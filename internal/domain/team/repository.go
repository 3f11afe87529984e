package team

import "context"

// Repository exposes team read operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
}
