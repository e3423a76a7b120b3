package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rakhafdl/goalstore/internal/platform/logging"
)

type seasonProviderStub struct {
	teams      []ExternalTeam
	matches    []ExternalMatch
	teamsErr   error
	matchesErr error
}

func (s *seasonProviderStub) FetchLeagueTeams(_ context.Context, _ int64) ([]ExternalTeam, error) {
	return s.teams, s.teamsErr
}

func (s *seasonProviderStub) FetchLeagueMatches(_ context.Context, _ int64) ([]ExternalMatch, error) {
	return s.matches, s.matchesErr
}

type fixtureProviderStub struct {
	mu          sync.Mutex
	fixtures    []ExternalFixture
	fixturesErr error
	predictions map[int64]*ExternalPrediction
	predErrs    map[int64]error
	fetched     []int64
}

func (s *fixtureProviderStub) FetchFixtures(_ context.Context, _ int64, _ int) ([]ExternalFixture, error) {
	return s.fixtures, s.fixturesErr
}

func (s *fixtureProviderStub) FetchPrediction(_ context.Context, fixtureID int64) (*ExternalPrediction, error) {
	s.mu.Lock()
	s.fetched = append(s.fetched, fixtureID)
	s.mu.Unlock()
	if err := s.predErrs[fixtureID]; err != nil {
		return nil, err
	}
	return s.predictions[fixtureID], nil
}

func newDataSyncServiceForTest(
	cfg DataSyncConfig,
	seasonProvider SeasonDataProvider,
	fixtureProvider FixtureDataProvider,
	teamRepo *teamRepoStub,
	matchRepo *matchRepoStub,
	fixtureRepo *fixtureRepoStub,
	predictionRepo *predictionRepoStub,
) *DataSyncService {
	teams := &teamCheckerStub{known: map[int64]bool{1: true, 2: true}}
	return NewDataSyncService(
		cfg,
		seasonProvider,
		fixtureProvider,
		NewTeamSyncService(teamRepo),
		NewMatchSyncService(matchRepo, teams, logging.NewNop()),
		NewFixtureSyncService(fixtureRepo),
		NewPredictionSyncService(predictionRepo),
		NewFixtureQueryService(fixtureRepo, predictionRepo),
		logging.NewNop(),
	)
}

func TestSyncSeasonDisabled(t *testing.T) {
	t.Parallel()

	service := newDataSyncServiceForTest(
		DataSyncConfig{},
		&seasonProviderStub{},
		&fixtureProviderStub{},
		&teamRepoStub{}, newMatchRepoStub(), &fixtureRepoStub{}, &predictionRepoStub{},
	)

	if _, err := service.SyncSeason(context.Background(), 100); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}

func TestSyncSeasonPersistsTeamsBeforeMatches(t *testing.T) {
	t.Parallel()

	teamRepo := &teamRepoStub{}
	matchRepo := newMatchRepoStub()
	provider := &seasonProviderStub{
		teams:   []ExternalTeam{{Team: ExternalTeamCore{ID: 1}}, {Team: ExternalTeamCore{ID: 2}}},
		matches: []ExternalMatch{externalMatchFixture(10, 1, 2)},
	}
	service := newDataSyncServiceForTest(
		DataSyncConfig{Enabled: true},
		provider,
		&fixtureProviderStub{},
		teamRepo, matchRepo, &fixtureRepoStub{}, &predictionRepoStub{},
	)

	result, err := service.SyncSeason(context.Background(), 100)
	if err != nil {
		t.Fatalf("sync season: %v", err)
	}
	if result.Created != 1 {
		t.Fatalf("unexpected batch result: %+v", result)
	}
	if len(teamRepo.upserted) != 1 {
		t.Fatalf("expected one team upsert call, got %d", len(teamRepo.upserted))
	}
}

func TestSyncSeasonFetchErrorPropagates(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("provider status=500")
	service := newDataSyncServiceForTest(
		DataSyncConfig{Enabled: true},
		&seasonProviderStub{matchesErr: fetchErr},
		&fixtureProviderStub{},
		&teamRepoStub{}, newMatchRepoStub(), &fixtureRepoStub{}, &predictionRepoStub{},
	)

	if _, err := service.SyncSeason(context.Background(), 100); !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestSyncPredictionsSkipsFailedFetches(t *testing.T) {
	t.Parallel()

	fixtureRepo := &fixtureRepoStub{ids: []int64{1, 2, 3}}
	predictionRepo := &predictionRepoStub{}
	provider := &fixtureProviderStub{
		predictions: map[int64]*ExternalPrediction{
			1: {},
			3: {},
		},
		predErrs: map[int64]error{2: errors.New("provider status=429")},
	}
	service := newDataSyncServiceForTest(
		DataSyncConfig{Enabled: true, PredictionWorkers: 2},
		&seasonProviderStub{},
		provider,
		&teamRepoStub{}, newMatchRepoStub(), fixtureRepo, predictionRepo,
	)

	saved, err := service.SyncPredictions(context.Background())
	if err != nil {
		t.Fatalf("sync predictions: %v", err)
	}
	if saved != 2 {
		t.Fatalf("expected 2 saved predictions, got %d", saved)
	}
	if len(provider.fetched) != 3 {
		t.Fatalf("expected 3 fetch attempts, got %v", provider.fetched)
	}
	if len(predictionRepo.upserted) != 1 || len(predictionRepo.upserted[0]) != 2 {
		t.Fatalf("expected one upsert with 2 rows, got %+v", predictionRepo.upserted)
	}
	for _, row := range predictionRepo.upserted[0] {
		if row.FixtureID != 1 && row.FixtureID != 3 {
			t.Fatalf("unexpected fixture id persisted: %d", row.FixtureID)
		}
	}
}
