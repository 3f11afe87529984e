package httpapi

import (
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/team"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/usecase"
)

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Country   string `json:"country"`
	Group     string `json:"group"`
	FlagURL   string `json:"flagUrl"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		Country:   t.Country,
		Group:     t.Group,
		FlagURL:   t.FlagURL,
	}
}

type upsertPredictionRequest struct {
	UserID          string `json:"userId" validate:"required"`
	MatchID         string `json:"matchId" validate:"required"`
	PredictedWinner string `json:"predictedWinner" validate:"required"`
	PredictedScoreA *int   `json:"predictedScoreA" validate:"omitempty,min=0,max=20"`
	PredictedScoreB *int   `json:"predictedScoreB" validate:"omitempty,min=0,max=20"`
}

type adminSyncRequest struct {
	Mode string `json:"mode" validate:"required,oneof=live today all"`
}

type matchDTO struct {
	ID         string `json:"id"`
	TeamAID    string `json:"teamAId"`
	TeamBID    string `json:"teamBId"`
	TeamAName  string `json:"teamAName"`
	TeamBName  string `json:"teamBName"`
	TeamAShort string `json:"teamAShort"`
	TeamBShort string `json:"teamBShort"`
	MatchDate  string `json:"matchDate"`
	Venue      string `json:"venue"`
	Stage      string `json:"stage"`
	Group      string `json:"group"`
	Status     string `json:"status"`
	ScoreA     *int   `json:"scoreA"`
	ScoreB     *int   `json:"scoreB"`
	Minute     string `json:"minute,omitempty"`
}

func matchToDTO(view usecase.MatchView) matchDTO {
	return matchDTO{
		ID:         view.ID,
		TeamAID:    view.TeamAID,
		TeamBID:    view.TeamBID,
		TeamAName:  view.TeamAName,
		TeamBName:  view.TeamBName,
		TeamAShort: view.TeamAShort,
		TeamBShort: view.TeamBShort,
		MatchDate:  view.MatchDate.UTC().Format(time.RFC3339),
		Venue:      view.Venue,
		Stage:      view.Stage,
		Group:      view.GroupName,
		Status:     view.Status,
		ScoreA:     view.ScoreA,
		ScoreB:     view.ScoreB,
		Minute:     view.Minute,
	}
}

type predictionDTO struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	MatchID         string `json:"matchId"`
	PredictedWinner string `json:"predictedWinner"`
	PredictedScoreA *int   `json:"predictedScoreA"`
	PredictedScoreB *int   `json:"predictedScoreB"`
	PointsEarned    int    `json:"pointsEarned"`
	IsCorrect       *bool  `json:"isCorrect"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

func predictionToDTO(p prediction.Prediction) predictionDTO {
	return predictionDTO{
		ID:              p.ID,
		UserID:          p.UserID,
		MatchID:         p.MatchID,
		PredictedWinner: p.PredictedWinner,
		PredictedScoreA: p.PredictedScoreA,
		PredictedScoreB: p.PredictedScoreB,
		PointsEarned:    p.PointsEarned,
		IsCorrect:       p.IsCorrect,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type syncStatusDTO struct {
	Usage   usecase.FeedUsage `json:"usage"`
	CanSync bool              `json:"canSync"`
}

type cronSkippedDTO struct {
	Skipped bool              `json:"skipped"`
	Reason  string            `json:"reason"`
	Usage   usecase.FeedUsage `json:"usage"`
}

type calculateResultDTO struct {
	MatchID              string `json:"matchId"`
	PredictionsProcessed int    `json:"predictionsProcessed"`
}

type recalculateResultDTO struct {
	PredictionsProcessed int `json:"predictionsProcessed"`
}
