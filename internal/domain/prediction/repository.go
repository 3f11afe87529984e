package prediction

import "context"

// Repository exposes prediction storage. (UserID, MatchID) is unique; Upsert
// replaces an existing row for the pair.
type Repository interface {
	GetByID(ctx context.Context, id string) (Prediction, bool, error)
	GetByUserAndMatch(ctx context.Context, userID, matchID string) (Prediction, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]Prediction, error)
	ListByUser(ctx context.Context, userID string) ([]Prediction, error)
	Upsert(ctx context.Context, p Prediction) error
	Delete(ctx context.Context, id string) error
}
