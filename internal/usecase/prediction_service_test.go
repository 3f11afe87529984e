package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/infrastructure/repository/memory"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("pred-%03d", g.n), nil
}

func newPredictionFixture(t *testing.T, kickoff time.Time) (*PredictionService, *memory.PredictionRepository, *memory.UserRepository) {
	t.Helper()
	matchRepo := memory.NewMatchRepository([]match.Match{
		{ID: "m1", TeamAName: "Morocco", TeamBName: "Comoros", MatchDate: kickoff, Status: match.StatusUpcoming},
		{ID: "m-live", TeamAName: "Egypt", TeamBName: "Zimbabwe", MatchDate: kickoff, Status: match.StatusLive},
	})
	predictionRepo := memory.NewPredictionRepository(nil)
	userRepo := memory.NewUserRepository([]user.User{{ID: "u1"}, {ID: "u2"}})
	gate := prediction.Gate{CreateCutoff: time.Hour, CancelCutoff: time.Hour}
	svc := NewPredictionService(predictionRepo, matchRepo, userRepo, gate, &seqIDGen{}, logging.NewNop())
	return svc, predictionRepo, userRepo
}

func TestPredictionService_Upsert_CreateThenReplace(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	svc, _, userRepo := newPredictionFixture(t, kickoff)
	svc.now = func() time.Time { return kickoff.Add(-3 * time.Hour) }

	created, err := svc.Upsert(context.Background(), UpsertPredictionInput{
		UserID:          "u1",
		MatchID:         "m1",
		PredictedWinner: "team_a",
		PredictedScoreA: intPtr(2),
		PredictedScoreB: intPtr(0),
	})
	if err != nil {
		t.Fatalf("Upsert create: %v", err)
	}
	if created.ID != "pred-001" {
		t.Fatalf("unexpected id: got=%s", created.ID)
	}
	if created.PredictedWinner != prediction.OutcomeTeamA {
		t.Fatalf("winner must be normalized: got=%s", created.PredictedWinner)
	}

	u1, _, _ := userRepo.GetByID(context.Background(), "u1")
	if u1.TotalPredictions != 1 {
		t.Fatalf("create must increment TotalPredictions: got=%d", u1.TotalPredictions)
	}

	replaced, err := svc.Upsert(context.Background(), UpsertPredictionInput{
		UserID:          "u1",
		MatchID:         "m1",
		PredictedWinner: prediction.OutcomeDraw,
	})
	if err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}
	if replaced.ID != created.ID {
		t.Fatalf("replace must keep the id: got=%s want=%s", replaced.ID, created.ID)
	}
	if !replaced.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("replace must keep CreatedAt")
	}
	if replaced.PredictedScoreA != nil {
		t.Fatalf("replace must not inherit the old score pair")
	}

	u1, _, _ = userRepo.GetByID(context.Background(), "u1")
	if u1.TotalPredictions != 1 {
		t.Fatalf("replace must not increment TotalPredictions: got=%d", u1.TotalPredictions)
	}
}

func TestPredictionService_Upsert_Validation(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	svc, _, _ := newPredictionFixture(t, kickoff)
	svc.now = func() time.Time { return kickoff.Add(-3 * time.Hour) }

	cases := []struct {
		name    string
		input   UpsertPredictionInput
		wantErr error
	}{
		{
			name:    "missing ids",
			input:   UpsertPredictionInput{PredictedWinner: prediction.OutcomeDraw},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "invalid winner",
			input:   UpsertPredictionInput{UserID: "u1", MatchID: "m1", PredictedWinner: "HOME"},
			wantErr: ErrInvalidInput,
		},
		{
			name: "half a score pair",
			input: UpsertPredictionInput{UserID: "u1", MatchID: "m1",
				PredictedWinner: prediction.OutcomeTeamA, PredictedScoreA: intPtr(1)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "score out of range",
			input: UpsertPredictionInput{UserID: "u1", MatchID: "m1",
				PredictedWinner: prediction.OutcomeTeamA,
				PredictedScoreA: intPtr(21), PredictedScoreB: intPtr(0)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown match",
			input: UpsertPredictionInput{UserID: "u1", MatchID: "missing",
				PredictedWinner: prediction.OutcomeTeamA},
			wantErr: ErrNotFound,
		},
		{
			name: "match already live",
			input: UpsertPredictionInput{UserID: "u1", MatchID: "m-live",
				PredictedWinner: prediction.OutcomeTeamA},
			wantErr: ErrPredictionWindowClosed,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := svc.Upsert(context.Background(), tc.input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tc.wantErr)
			}
		})
	}
}

func TestPredictionService_Upsert_WindowBoundary(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	input := UpsertPredictionInput{UserID: "u1", MatchID: "m1", PredictedWinner: prediction.OutcomeTeamA}

	svc, _, _ := newPredictionFixture(t, kickoff)
	svc.now = func() time.Time { return kickoff.Add(-time.Hour - time.Second) }
	if _, err := svc.Upsert(context.Background(), input); err != nil {
		t.Fatalf("one second before the cutoff must pass: %v", err)
	}

	svc, _, _ = newPredictionFixture(t, kickoff)
	svc.now = func() time.Time { return kickoff.Add(-time.Hour) }
	if _, err := svc.Upsert(context.Background(), input); !errors.Is(err, ErrPredictionWindowClosed) {
		t.Fatalf("the cutoff instant must reject the write, got=%v", err)
	}
}

func TestPredictionService_Delete(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	svc, predictionRepo, userRepo := newPredictionFixture(t, kickoff)
	svc.now = func() time.Time { return kickoff.Add(-3 * time.Hour) }

	created, err := svc.Upsert(context.Background(), UpsertPredictionInput{
		UserID: "u1", MatchID: "m1", PredictedWinner: prediction.OutcomeTeamA,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := svc.Delete(context.Background(), "u2", created.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("deleting another user's prediction must fail: got=%v", err)
	}
	if err := svc.Delete(context.Background(), "u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}

	if err := svc.Delete(context.Background(), "u1", created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := predictionRepo.GetByID(context.Background(), created.ID); found {
		t.Fatalf("prediction must be gone after delete")
	}
	u1, _, _ := userRepo.GetByID(context.Background(), "u1")
	if u1.TotalPredictions != 0 {
		t.Fatalf("delete must decrement TotalPredictions: got=%d", u1.TotalPredictions)
	}
}

func TestPredictionService_Delete_WindowClosed(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	svc, _, _ := newPredictionFixture(t, kickoff)
	svc.now = func() time.Time { return kickoff.Add(-3 * time.Hour) }

	created, err := svc.Upsert(context.Background(), UpsertPredictionInput{
		UserID: "u1", MatchID: "m1", PredictedWinner: prediction.OutcomeTeamA,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	svc.now = func() time.Time { return kickoff.Add(-30 * time.Minute) }
	if err := svc.Delete(context.Background(), "u1", created.ID); !errors.Is(err, ErrPredictionWindowClosed) {
		t.Fatalf("expected ErrPredictionWindowClosed inside the cutoff, got=%v", err)
	}
}
