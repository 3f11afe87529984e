package user

import "context"

// Repository exposes user storage. UpdateFunc applies fn under an atomic
// read-modify-write so concurrent score applications for the same user cannot
// lose increments.
type Repository interface {
	GetByID(ctx context.Context, id string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	UpdateFunc(ctx context.Context, id string, fn func(*User)) error
}
