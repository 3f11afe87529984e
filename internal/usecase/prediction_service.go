package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/id"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

// UpsertPredictionInput is the write payload for creating or replacing a
// user's prediction on one match.
type UpsertPredictionInput struct {
	UserID          string
	MatchID         string
	PredictedWinner string
	PredictedScoreA *int
	PredictedScoreB *int
}

// PredictionService owns the prediction write path. Every write is checked
// against the kickoff gate and the owning match's state before it lands.
type PredictionService struct {
	predictionRepo prediction.Repository
	matchRepo      match.Repository
	userRepo       user.Repository
	gate           prediction.Gate
	idGen          id.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewPredictionService(
	predictionRepo prediction.Repository,
	matchRepo match.Repository,
	userRepo user.Repository,
	gate prediction.Gate,
	idGen id.Generator,
	logger *logging.Logger,
) *PredictionService {
	if idGen == nil {
		idGen = id.NewRandomGenerator("pred")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PredictionService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		userRepo:       userRepo,
		gate:           gate,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

// Upsert creates the user's prediction for a match, or replaces the existing
// one. Writes are rejected once the match left UPCOMING or the create window
// closed, whichever comes first.
func (s *PredictionService) Upsert(ctx context.Context, input UpsertPredictionInput) (prediction.Prediction, error) {
	if input.UserID == "" || input.MatchID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: user id and match id are required", ErrInvalidInput)
	}
	winner := prediction.NormalizeWinner(input.PredictedWinner)
	if !prediction.IsValidWinner(winner) {
		return prediction.Prediction{}, fmt.Errorf("%w: predicted winner %q", ErrInvalidInput, input.PredictedWinner)
	}
	if err := validateScorePair(input.PredictedScoreA, input.PredictedScoreB); err != nil {
		return prediction.Prediction{}, err
	}

	m, found, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return prediction.Prediction{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}
	if m.Status != match.StatusUpcoming {
		return prediction.Prediction{}, fmt.Errorf("%w: match=%s status=%s", ErrPredictionWindowClosed, m.ID, m.Status)
	}
	now := s.now().UTC()
	if !s.gate.CanCreate(m.MatchDate, now) {
		return prediction.Prediction{}, fmt.Errorf("%w: match=%s deadline=%s",
			ErrPredictionWindowClosed, m.ID, s.gate.CreateDeadline(m.MatchDate).Format(time.RFC3339))
	}

	existing, exists, err := s.predictionRepo.GetByUserAndMatch(ctx, input.UserID, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get prediction: %w", err)
	}

	p := prediction.Prediction{
		UserID:          input.UserID,
		MatchID:         input.MatchID,
		PredictedWinner: winner,
		PredictedScoreA: input.PredictedScoreA,
		PredictedScoreB: input.PredictedScoreB,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if exists {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		newID, err := s.idGen.NewID()
		if err != nil {
			return prediction.Prediction{}, fmt.Errorf("generate prediction id: %w", err)
		}
		p.ID = newID
	}

	if err := s.predictionRepo.Upsert(ctx, p); err != nil {
		return prediction.Prediction{}, fmt.Errorf("upsert prediction: %w", err)
	}

	if !exists {
		if err := s.userRepo.UpdateFunc(ctx, input.UserID, func(u *user.User) {
			u.TotalPredictions++
		}); err != nil {
			return prediction.Prediction{}, fmt.Errorf("update user=%s: %w", input.UserID, err)
		}
	}

	s.logger.DebugContext(ctx, "prediction saved",
		"user_id", input.UserID,
		"match", m.Label(),
		"winner", winner,
		"replaced", exists,
	)
	return p, nil
}

// Delete removes the caller's own prediction while the cancel window is open.
func (s *PredictionService) Delete(ctx context.Context, userID, predictionID string) error {
	if userID == "" || predictionID == "" {
		return fmt.Errorf("%w: user id and prediction id are required", ErrInvalidInput)
	}

	p, found, err := s.predictionRepo.GetByID(ctx, predictionID)
	if err != nil {
		return fmt.Errorf("get prediction: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: prediction=%s", ErrNotFound, predictionID)
	}
	if p.UserID != userID {
		return fmt.Errorf("%w: prediction=%s", ErrUnauthorized, predictionID)
	}

	m, found, err := s.matchRepo.GetByID(ctx, p.MatchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: match=%s", ErrNotFound, p.MatchID)
	}
	if m.Status != match.StatusUpcoming || !s.gate.CanCancel(m.MatchDate, s.now().UTC()) {
		return fmt.Errorf("%w: match=%s", ErrPredictionWindowClosed, m.ID)
	}

	if err := s.predictionRepo.Delete(ctx, predictionID); err != nil {
		return fmt.Errorf("delete prediction: %w", err)
	}
	if err := s.userRepo.UpdateFunc(ctx, userID, func(u *user.User) {
		if u.TotalPredictions > 0 {
			u.TotalPredictions--
		}
	}); err != nil {
		return fmt.Errorf("update user=%s: %w", userID, err)
	}

	s.logger.DebugContext(ctx, "prediction deleted", "user_id", userID, "match", m.Label())
	return nil
}

// ListByUser returns the user's predictions, newest first.
func (s *PredictionService) ListByUser(ctx context.Context, userID string) ([]prediction.Prediction, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	predictions, err := s.predictionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list predictions for user=%s: %w", userID, err)
	}
	return predictions, nil
}

func validateScorePair(scoreA, scoreB *int) error {
	if (scoreA == nil) != (scoreB == nil) {
		return fmt.Errorf("%w: predicted scores must be set together", ErrInvalidInput)
	}
	if scoreA == nil {
		return nil
	}
	for _, score := range []int{*scoreA, *scoreB} {
		if score < 0 || score > prediction.MaxPredictedScore {
			return fmt.Errorf("%w: predicted score %d out of range 0..%d",
				ErrInvalidInput, score, prediction.MaxPredictedScore)
		}
	}
	return nil
}
