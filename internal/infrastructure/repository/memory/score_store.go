package memory

import (
	"context"
	"fmt"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
)

// ScoreStore commits a scored prediction and the owner's aggregate change
// together. The user is resolved under the write lock before the prediction
// is touched, so a missing user leaves both sides untouched.
type ScoreStore struct {
	predictions *PredictionRepository
	users       *UserRepository
}

func NewScoreStore(predictions *PredictionRepository, users *UserRepository) *ScoreStore {
	return &ScoreStore{predictions: predictions, users: users}
}

func (s *ScoreStore) CommitScored(_ context.Context, p prediction.Prediction, applyUser func(*user.User)) error {
	s.users.mu.Lock()
	defer s.users.mu.Unlock()

	u, ok := s.users.users[p.UserID]
	if !ok {
		return fmt.Errorf("user %s not found", p.UserID)
	}

	s.predictions.mu.Lock()
	s.predictions.predictions[p.ID] = p
	s.predictions.mu.Unlock()

	applyUser(&u)
	s.users.users[p.UserID] = u
	return nil
}
