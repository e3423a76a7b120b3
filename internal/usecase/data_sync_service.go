package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/rakhafdl/goalstore/internal/domain/match"
	"github.com/rakhafdl/goalstore/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// SeasonDataProvider serves flat season payloads: team listings and
// match records.
type SeasonDataProvider interface {
	FetchLeagueTeams(ctx context.Context, seasonID int64) ([]ExternalTeam, error)
	FetchLeagueMatches(ctx context.Context, seasonID int64) ([]ExternalMatch, error)
}

// FixtureDataProvider serves nested fixture payloads and per-fixture
// predictions.
type FixtureDataProvider interface {
	FetchFixtures(ctx context.Context, leagueID int64, season int) ([]ExternalFixture, error)
	FetchPrediction(ctx context.Context, fixtureID int64) (*ExternalPrediction, error)
}

type DataSyncConfig struct {
	Enabled           bool
	PredictionWorkers int
}

// DataSyncService pulls provider data and feeds it through the save
// pipeline. Fetches run concurrently; persistence stays sequential so
// batch ordering guarantees hold.
type DataSyncService struct {
	cfg             DataSyncConfig
	seasonProvider  SeasonDataProvider
	fixtureProvider FixtureDataProvider
	teamSync        *TeamSyncService
	matchSync       *MatchSyncService
	fixtureSync     *FixtureSyncService
	predictionSync  *PredictionSyncService
	fixtureQuery    *FixtureQueryService
	logger          *logging.Logger
}

func NewDataSyncService(
	cfg DataSyncConfig,
	seasonProvider SeasonDataProvider,
	fixtureProvider FixtureDataProvider,
	teamSync *TeamSyncService,
	matchSync *MatchSyncService,
	fixtureSync *FixtureSyncService,
	predictionSync *PredictionSyncService,
	fixtureQuery *FixtureQueryService,
	logger *logging.Logger,
) *DataSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.PredictionWorkers <= 0 {
		cfg.PredictionWorkers = 4
	}
	return &DataSyncService{
		cfg:             cfg,
		seasonProvider:  seasonProvider,
		fixtureProvider: fixtureProvider,
		teamSync:        teamSync,
		matchSync:       matchSync,
		fixtureSync:     fixtureSync,
		predictionSync:  predictionSync,
		fixtureQuery:    fixtureQuery,
		logger:          logger,
	}
}

// SyncSeason fetches the season's teams and matches in parallel, then
// persists teams before matches so referential checks see fresh teams.
func (s *DataSyncService) SyncSeason(ctx context.Context, seasonID int64) (match.BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "DataSyncService.SyncSeason")
	defer span.End()

	if !s.cfg.Enabled || s.seasonProvider == nil {
		return match.BatchResult{}, fmt.Errorf("%w: season data sync is disabled", ErrDependencyUnavailable)
	}
	if seasonID <= 0 {
		return match.BatchResult{}, fmt.Errorf("%w: season id must be greater than zero", ErrInvalidInput)
	}

	var (
		teams      []ExternalTeam
		matches    []ExternalMatch
		teamsErr   error
		matchesErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		teams, teamsErr = s.seasonProvider.FetchLeagueTeams(ctx, seasonID)
	})
	wg.Go(func() {
		matches, matchesErr = s.seasonProvider.FetchLeagueMatches(ctx, seasonID)
	})
	wg.Wait()

	if teamsErr != nil {
		return match.BatchResult{}, fmt.Errorf("fetch league teams season_id=%d: %w", seasonID, teamsErr)
	}
	if matchesErr != nil {
		return match.BatchResult{}, fmt.Errorf("fetch league matches season_id=%d: %w", seasonID, matchesErr)
	}

	if err := s.teamSync.SaveLeagueTeams(ctx, teams); err != nil {
		return match.BatchResult{}, err
	}

	result := s.matchSync.SaveMatches(ctx, matches)
	s.logger.InfoContext(ctx, "season sync finished",
		"season_id", seasonID,
		"teams", len(teams),
		"matches_created", result.Created,
		"matches_skipped_existing", result.SkippedExisting,
		"matches_skipped_invalid", result.SkippedInvalid,
		"matches_skipped_missing_team", result.SkippedMissingTeam,
	)
	return result, nil
}

func (s *DataSyncService) SyncFixtures(ctx context.Context, leagueID int64, season int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "DataSyncService.SyncFixtures")
	defer span.End()

	if !s.cfg.Enabled || s.fixtureProvider == nil {
		return 0, fmt.Errorf("%w: fixture data sync is disabled", ErrDependencyUnavailable)
	}
	if leagueID <= 0 {
		return 0, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	fixtures, err := s.fixtureProvider.FetchFixtures(ctx, leagueID, season)
	if err != nil {
		return 0, fmt.Errorf("fetch fixtures league_id=%d season=%d: %w", leagueID, season, err)
	}

	if err := s.fixtureSync.SaveFixtures(ctx, fixtures); err != nil {
		return 0, err
	}

	return len(fixtures), nil
}

// SyncPredictions fetches a prediction for every fixture that has none
// yet, using a bounded worker pool for the per-fixture provider calls.
// Individual fetch failures are logged and skipped; everything fetched
// is persisted in one batch afterwards.
func (s *DataSyncService) SyncPredictions(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "DataSyncService.SyncPredictions")
	defer span.End()

	if !s.cfg.Enabled || s.fixtureProvider == nil {
		return 0, fmt.Errorf("%w: prediction data sync is disabled", ErrDependencyUnavailable)
	}

	ids, err := s.fixtureQuery.ListFixtureIDsWithoutPredictions(ctx)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(s.cfg.PredictionWorkers)
	if err != nil {
		return 0, fmt.Errorf("create prediction worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu        sync.Mutex
		collected = make([]ExternalPrediction, 0, len(ids))
		workers   sync.WaitGroup
	)
	for _, id := range ids {
		id := id
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			item, fetchErr := s.fixtureProvider.FetchPrediction(ctx, id)
			if fetchErr != nil {
				s.logger.WarnContext(ctx, "fetch prediction failed, skipping fixture", "fixture_id", id, "error", fetchErr)
				return
			}
			if item == nil {
				return
			}
			item.FixtureID = id

			mu.Lock()
			collected = append(collected, *item)
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return 0, fmt.Errorf("submit prediction fetch to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := s.predictionSync.SavePredictions(ctx, collected); err != nil {
		return 0, err
	}

	return len(collected), nil
}
