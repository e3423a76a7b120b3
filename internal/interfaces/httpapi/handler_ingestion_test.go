package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/rakhafdl/goalstore/internal/domain/fixture"
	"github.com/rakhafdl/goalstore/internal/domain/match"
	"github.com/rakhafdl/goalstore/internal/domain/prediction"
	"github.com/rakhafdl/goalstore/internal/domain/team"
	"github.com/rakhafdl/goalstore/internal/platform/logging"
	"github.com/rakhafdl/goalstore/internal/usecase"
)

type teamRepoStub struct {
	known      map[int64]bool
	upserted   [][]team.Team
	cleanNames []*string
}

func (s *teamRepoStub) UpsertBatch(_ context.Context, teams []team.Team) error {
	s.upserted = append(s.upserted, teams)
	return nil
}

func (s *teamRepoStub) ExistsByID(_ context.Context, id int64) (bool, error) {
	return s.known[id], nil
}

func (s *teamRepoStub) ListCleanNamesDesc(_ context.Context) ([]*string, error) {
	return s.cleanNames, nil
}

type matchRepoStub struct {
	existing  map[int64]bool
	createErr error
	created   []match.Match
	listItems []match.WithDetails
	listErr   error
}

func (s *matchRepoStub) Exists(_ context.Context, id int64) (bool, error) {
	return s.existing[id], nil
}

func (s *matchRepoStub) CreateWithDetails(_ context.Context, row match.Match, _ *match.Stats, _ *match.Odds) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, row)
	return nil
}

func (s *matchRepoStub) ListByFilter(_ context.Context, _ match.Filter) ([]match.WithDetails, error) {
	return s.listItems, s.listErr
}

type fixtureRepoStub struct {
	ids []int64
}

func (s *fixtureRepoStub) UpsertBatch(_ context.Context, _ []fixture.Fixture) error { return nil }

func (s *fixtureRepoStub) ListIDsExcluding(_ context.Context, _ []int64) ([]int64, error) {
	return s.ids, nil
}

type predictionRepoStub struct{}

func (s *predictionRepoStub) UpsertBatch(_ context.Context, _ []prediction.Prediction) error {
	return nil
}

func (s *predictionRepoStub) ListFixtureIDs(_ context.Context) ([]int64, error) { return nil, nil }

func newTestHandler(teamRepo *teamRepoStub, matchRepo *matchRepoStub) *Handler {
	fixtureRepo := &fixtureRepoStub{}
	predictionRepo := &predictionRepoStub{}
	fixtureSync := usecase.NewFixtureSyncService(fixtureRepo)
	predictionSync := usecase.NewPredictionSyncService(predictionRepo)
	fixtureQuery := usecase.NewFixtureQueryService(fixtureRepo, predictionRepo)
	return NewHandler(
		usecase.NewTeamSyncService(teamRepo),
		usecase.NewMatchSyncService(matchRepo, teamRepo, logging.NewNop()),
		fixtureSync,
		predictionSync,
		usecase.NewMatchQueryService(matchRepo),
		fixtureQuery,
		usecase.NewDisplayService(teamRepo, nil),
		usecase.NewDataSyncService(
			usecase.DataSyncConfig{},
			nil,
			nil,
			usecase.NewTeamSyncService(teamRepo),
			usecase.NewMatchSyncService(matchRepo, teamRepo, logging.NewNop()),
			fixtureSync,
			predictionSync,
			fixtureQuery,
			logging.NewNop(),
		),
		logging.NewNop(),
	)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestIngestMatchesReportsBatchOutcome(t *testing.T) {
	teamRepo := &teamRepoStub{known: map[int64]bool{1: true, 2: true}}
	matchRepo := &matchRepoStub{existing: map[int64]bool{30: true}}
	handler := newTestHandler(teamRepo, matchRepo)

	payload := `{"matches": [
		{"id": 10, "homeID": 1, "awayID": 2},
		{"id": 20, "homeID": 0, "awayID": 2},
		{"id": 30, "homeID": 1, "awayID": 2},
		{"id": 40, "homeID": 1, "awayID": 9}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/ingestion/matches", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.IngestMatches(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	if got, _ := data["created"].(float64); got != 1 {
		t.Fatalf("expected created=1, got %v", data["created"])
	}
	if got, _ := data["skippedExisting"].(float64); got != 1 {
		t.Fatalf("expected skippedExisting=1, got %v", data["skippedExisting"])
	}
	if got, _ := data["skippedInvalid"].(float64); got != 1 {
		t.Fatalf("expected skippedInvalid=1, got %v", data["skippedInvalid"])
	}
	if got, _ := data["skippedMissingTeam"].(float64); got != 1 {
		t.Fatalf("expected skippedMissingTeam=1, got %v", data["skippedMissingTeam"])
	}
	if len(matchRepo.created) != 1 || matchRepo.created[0].ID != 10 {
		t.Fatalf("unexpected persisted matches: %+v", matchRepo.created)
	}
}

func TestIngestMatchesStorageFaultStillRespondsOK(t *testing.T) {
	teamRepo := &teamRepoStub{known: map[int64]bool{1: true, 2: true}}
	matchRepo := &matchRepoStub{createErr: context.DeadlineExceeded}
	handler := newTestHandler(teamRepo, matchRepo)

	payload := `{"matches": [{"id": 10, "homeID": 1, "awayID": 2}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/ingestion/matches", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.IngestMatches(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 despite fault, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if errText, _ := data["error"].(string); errText == "" {
		t.Fatalf("expected batch fault in response body, got %v", data)
	}
	if got, _ := data["created"].(float64); got != 0 {
		t.Fatalf("expected created=0, got %v", data["created"])
	}
}

func TestIngestTeamsRejectsEmptyBatch(t *testing.T) {
	handler := newTestHandler(&teamRepoStub{}, &matchRepoStub{})

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/ingestion/teams", strings.NewReader(`{"teams": []}`))
	rec := httptest.NewRecorder()

	handler.IngestTeams(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListMatchesRejectsNonNumericFilter(t *testing.T) {
	handler := newTestHandler(&teamRepoStub{}, &matchRepoStub{})

	req := httptest.NewRequest(http.MethodGet, "/v1/matches?competition_id=abc", nil)
	rec := httptest.NewRecorder()

	handler.ListMatches(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestInternalRoutesRequireToken(t *testing.T) {
	handler := newTestHandler(&teamRepoStub{}, &matchRepoStub{})
	router := NewRouter(handler, nil, nil, "secret-token")

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/sync/run", strings.NewReader(`{"target":"predictions"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/sync/run", strings.NewReader(`{"target":"predictions"}`))
	req.Header.Set("X-Internal-Job-Token", "secret-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code == http.StatusUnauthorized {
		t.Fatalf("expected token to be accepted, got %d body=%s", rec.Code, rec.Body.String())
	}
}
