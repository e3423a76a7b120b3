package usecase

import (
	"context"

	"github.com/rakhafdl/goalstore/internal/domain/match"
	"github.com/rakhafdl/goalstore/internal/platform/logging"
)

type MatchSyncService struct {
	matchRepo match.Repository
	teamRepo  teamExistenceChecker
	logger    *logging.Logger
}

type teamExistenceChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

func NewMatchSyncService(matchRepo match.Repository, teamRepo teamExistenceChecker, logger *logging.Logger) *MatchSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchSyncService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		logger:    logger,
	}
}

// SaveMatches walks the batch in order. Already-stored matches and
// records with missing identity or unknown teams are skipped with a
// warning. The first storage fault stops the batch: earlier records
// stay committed, later records are never attempted, and the fault is
// reported through the result instead of an error return.
func (s *MatchSyncService) SaveMatches(ctx context.Context, matches []ExternalMatch) match.BatchResult {
	ctx, span := startUsecaseSpan(ctx, "MatchSyncService.SaveMatches")
	defer span.End()

	var result match.BatchResult
	for _, item := range matches {
		exists, err := s.matchRepo.Exists(ctx, item.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "match batch aborted", "match_id", item.ID, "processed", result.Processed(), "error", err)
			result.Err = err
			return result
		}
		if exists {
			s.logger.WarnContext(ctx, "skipping match: already stored", "match_id", item.ID)
			result.SkippedExisting++
			continue
		}

		if item.ID == 0 || item.HomeID == 0 || item.AwayID == 0 {
			s.logger.WarnContext(ctx, "skipping match: missing required fields", "match_id", item.ID, "home_id", item.HomeID, "away_id", item.AwayID)
			result.SkippedInvalid++
			continue
		}

		homeExists, err := s.teamRepo.ExistsByID(ctx, item.HomeID)
		if err != nil {
			s.logger.ErrorContext(ctx, "match batch aborted", "match_id", item.ID, "processed", result.Processed(), "error", err)
			result.Err = err
			return result
		}
		awayExists, err := s.teamRepo.ExistsByID(ctx, item.AwayID)
		if err != nil {
			s.logger.ErrorContext(ctx, "match batch aborted", "match_id", item.ID, "processed", result.Processed(), "error", err)
			result.Err = err
			return result
		}
		if !homeExists || !awayExists {
			s.logger.WarnContext(ctx, "skipping match: missing team(s)", "match_id", item.ID, "home_id", item.HomeID, "away_id", item.AwayID)
			result.SkippedMissingTeam++
			continue
		}

		row, stats, odds := mapExternalMatch(item)
		if err := s.matchRepo.CreateWithDetails(ctx, row, stats, odds); err != nil {
			s.logger.ErrorContext(ctx, "match batch aborted", "match_id", item.ID, "processed", result.Processed(), "error", err)
			result.Err = err
			return result
		}
		result.Created++
	}

	return result
}

func mapExternalMatch(item ExternalMatch) (match.Match, *match.Stats, *match.Odds) {
	row := match.Match{
		ID:            item.ID,
		HomeTeamID:    item.HomeID,
		AwayTeamID:    item.AwayID,
		Season:        item.Season,
		Status:        item.Status,
		DateUnix:      item.DateUnix,
		CompetitionID: item.CompetitionID,
		StadiumName:   item.StadiumName,
		Attendance:    item.Attendance,
		RefereeID:     item.RefereeID,
	}

	var stats *match.Stats
	if item.HomeGoalCount != nil {
		stats = &match.Stats{
			MatchID:           item.ID,
			HomeGoals:         item.HomeGoalCount,
			AwayGoals:         item.AwayGoalCount,
			HomeCorners:       item.TeamACorners,
			AwayCorners:       item.TeamBCorners,
			HomeShotsOnTarget: item.TeamAShotsOnTarget,
			AwayShotsOnTarget: item.TeamBShotsOnTarget,
			HomePossession:    item.TeamAPossession,
			AwayPossession:    item.TeamBPossession,
			HomeXG:            item.TeamAXG,
			AwayXG:            item.TeamBXG,
		}
	}

	var odds *match.Odds
	if item.OddsFT1 != nil {
		odds = &match.Odds{
			MatchID: item.ID,
			FTHome:  item.OddsFT1,
			FTDraw:  item.OddsFTX,
			FTAway:  item.OddsFT2,
			BTTSYes: item.OddsBTTSYes,
			BTTSNo:  item.OddsBTTSNo,
			Over25:  item.OddsFTOver25,
			Under25: item.OddsFTUnder25,
		}
	}

	return row, stats, odds
}
