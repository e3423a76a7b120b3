package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rakhafdl/goalstore/internal/domain/match"
	"github.com/rakhafdl/goalstore/internal/platform/logging"
	"github.com/rakhafdl/goalstore/internal/usecase"
)

type Handler struct {
	teamSyncService       *usecase.TeamSyncService
	matchSyncService      *usecase.MatchSyncService
	fixtureSyncService    *usecase.FixtureSyncService
	predictionSyncService *usecase.PredictionSyncService
	matchQueryService     *usecase.MatchQueryService
	fixtureQueryService   *usecase.FixtureQueryService
	displayService        *usecase.DisplayService
	dataSyncService       *usecase.DataSyncService
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	teamSyncService *usecase.TeamSyncService,
	matchSyncService *usecase.MatchSyncService,
	fixtureSyncService *usecase.FixtureSyncService,
	predictionSyncService *usecase.PredictionSyncService,
	matchQueryService *usecase.MatchQueryService,
	fixtureQueryService *usecase.FixtureQueryService,
	displayService *usecase.DisplayService,
	dataSyncService *usecase.DataSyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamSyncService:       teamSyncService,
		matchSyncService:      matchSyncService,
		fixtureSyncService:    fixtureSyncService,
		predictionSyncService: predictionSyncService,
		matchQueryService:     matchQueryService,
		fixtureQueryService:   fixtureQueryService,
		displayService:        displayService,
		dataSyncService:       dataSyncService,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type ingestTeamsRequest struct {
	Teams []usecase.ExternalTeam `json:"teams" validate:"required,min=1"`
}

type ingestMatchesRequest struct {
	Matches []usecase.ExternalMatch `json:"matches" validate:"required,min=1"`
}

type ingestFixturesRequest struct {
	Fixtures []usecase.ExternalFixture `json:"fixtures" validate:"required,min=1"`
}

type ingestPredictionsRequest struct {
	Predictions []usecase.ExternalPrediction `json:"predictions" validate:"required,min=1"`
}

type runSyncRequest struct {
	Target   string `json:"target" validate:"required,oneof=season fixtures predictions"`
	SeasonID int64  `json:"season_id" validate:"omitempty,gt=0"`
	LeagueID int64  `json:"league_id" validate:"omitempty,gt=0"`
	Season   int    `json:"season" validate:"omitempty,gt=0"`
}

type matchBatchResultDTO struct {
	Created            int    `json:"created"`
	SkippedExisting    int    `json:"skippedExisting"`
	SkippedInvalid     int    `json:"skippedInvalid"`
	SkippedMissingTeam int    `json:"skippedMissingTeam"`
	Processed          int    `json:"processed"`
	Error              string `json:"error,omitempty"`
}

type matchDTO struct {
	ID            int64          `json:"id"`
	HomeTeamID    int64          `json:"homeTeamId"`
	AwayTeamID    int64          `json:"awayTeamId"`
	Season        *string        `json:"season,omitempty"`
	Status        *string        `json:"status,omitempty"`
	DateUnix      *int64         `json:"dateUnix,omitempty"`
	CompetitionID *int64         `json:"competitionId,omitempty"`
	StadiumName   *string        `json:"stadiumName,omitempty"`
	Attendance    *int           `json:"attendance,omitempty"`
	RefereeID     *int64         `json:"refereeId,omitempty"`
	Stats         *matchStatsDTO `json:"stats,omitempty"`
	Odds          *matchOddsDTO  `json:"odds,omitempty"`
}

type matchStatsDTO struct {
	HomeGoals         *int     `json:"homeGoals,omitempty"`
	AwayGoals         *int     `json:"awayGoals,omitempty"`
	HomeCorners       *int     `json:"homeCorners,omitempty"`
	AwayCorners       *int     `json:"awayCorners,omitempty"`
	HomeShotsOnTarget *int     `json:"homeShotsOnTarget,omitempty"`
	AwayShotsOnTarget *int     `json:"awayShotsOnTarget,omitempty"`
	HomePossession    *int     `json:"homePossession,omitempty"`
	AwayPossession    *int     `json:"awayPossession,omitempty"`
	HomeXG            *float64 `json:"homeXg,omitempty"`
	AwayXG            *float64 `json:"awayXg,omitempty"`
}

type matchOddsDTO struct {
	FTHome  *float64 `json:"ftHome,omitempty"`
	FTDraw  *float64 `json:"ftDraw,omitempty"`
	FTAway  *float64 `json:"ftAway,omitempty"`
	BTTSYes *float64 `json:"bttsYes,omitempty"`
	BTTSNo  *float64 `json:"bttsNo,omitempty"`
	Over25  *float64 `json:"over25,omitempty"`
	Under25 *float64 `json:"under25,omitempty"`
}

func batchResultToDTO(result match.BatchResult) matchBatchResultDTO {
	dto := matchBatchResultDTO{
		Created:            result.Created,
		SkippedExisting:    result.SkippedExisting,
		SkippedInvalid:     result.SkippedInvalid,
		SkippedMissingTeam: result.SkippedMissingTeam,
		Processed:          result.Processed(),
	}
	if result.Err != nil {
		dto.Error = result.Err.Error()
	}
	return dto
}

func matchToDTO(ctx context.Context, item match.WithDetails) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	dto := matchDTO{
		ID:            item.Match.ID,
		HomeTeamID:    item.Match.HomeTeamID,
		AwayTeamID:    item.Match.AwayTeamID,
		Season:        item.Match.Season,
		Status:        item.Match.Status,
		DateUnix:      item.Match.DateUnix,
		CompetitionID: item.Match.CompetitionID,
		StadiumName:   item.Match.StadiumName,
		Attendance:    item.Match.Attendance,
		RefereeID:     item.Match.RefereeID,
	}
	if item.Stats != nil {
		dto.Stats = &matchStatsDTO{
			HomeGoals:         item.Stats.HomeGoals,
			AwayGoals:         item.Stats.AwayGoals,
			HomeCorners:       item.Stats.HomeCorners,
			AwayCorners:       item.Stats.AwayCorners,
			HomeShotsOnTarget: item.Stats.HomeShotsOnTarget,
			AwayShotsOnTarget: item.Stats.AwayShotsOnTarget,
			HomePossession:    item.Stats.HomePossession,
			AwayPossession:    item.Stats.AwayPossession,
			HomeXG:            item.Stats.HomeXG,
			AwayXG:            item.Stats.AwayXG,
		}
	}
	if item.Odds != nil {
		dto.Odds = &matchOddsDTO{
			FTHome:  item.Odds.FTHome,
			FTDraw:  item.Odds.FTDraw,
			FTAway:  item.Odds.FTAway,
			BTTSYes: item.Odds.BTTSYes,
			BTTSNo:  item.Odds.BTTSNo,
			Over25:  item.Odds.Over25,
			Under25: item.Odds.Under25,
		}
	}
	return dto
}
