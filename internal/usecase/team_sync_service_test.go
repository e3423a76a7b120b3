package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rakhafdl/goalstore/internal/domain/team"
)

type teamRepoStub struct {
	upserted   [][]team.Team
	upsertErr  error
	cleanNames []*string
	listErr    error
	listCalls  int
}

func (s *teamRepoStub) UpsertBatch(_ context.Context, teams []team.Team) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, teams)
	return nil
}

func (s *teamRepoStub) ExistsByID(_ context.Context, _ int64) (bool, error) {
	return false, nil
}

func (s *teamRepoStub) ListCleanNamesDesc(_ context.Context) ([]*string, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.cleanNames, nil
}

func ptrString(v string) *string { return &v }
func ptrInt(v int) *int          { return &v }
func ptrInt64(v int64) *int64    { return &v }

func TestSaveLeagueTeamsMapsNestedPayload(t *testing.T) {
	t.Parallel()

	repo := &teamRepoStub{}
	service := NewTeamSyncService(repo)

	err := service.SaveLeagueTeams(context.Background(), []ExternalTeam{
		{
			Team: ExternalTeamCore{
				ID:               55,
				Name:             ptrString("AFC Ajax"),
				Country:          ptrString("Netherlands"),
				Founded:          ptrInt(1900),
				Logo:             ptrString("https://cdn.example/ajax.png"),
				Website:          ptrString("https://www.ajax.nl"),
				FullName:         ptrString("Amsterdamsche Football Club Ajax"),
				AlternativeNames: []string{"Ajax Amsterdam"},
			},
			Season:     &ExternalTeamSeason{Current: ptrInt(2024), Format: ptrString("Domestic League")},
			Statistics: &ExternalTeamStatistics{Rank: ptrInt(1), PerformanceRank: ptrInt(2)},
			League:     &ExternalTeamLeague{ID: ptrInt64(88)},
			Risk:       ptrInt(3),
		},
	})
	if err != nil {
		t.Fatalf("save league teams: %v", err)
	}

	if len(repo.upserted) != 1 || len(repo.upserted[0]) != 1 {
		t.Fatalf("expected one upsert call with one row, got %+v", repo.upserted)
	}
	row := repo.upserted[0][0]
	if row.ID != 55 {
		t.Fatalf("unexpected id: %d", row.ID)
	}
	if row.CleanName == nil || *row.CleanName != "afcajax" {
		t.Fatalf("unexpected clean name: %v", row.CleanName)
	}
	if row.EnglishName == nil || *row.EnglishName != "AFC Ajax" {
		t.Fatalf("unexpected english name: %v", row.EnglishName)
	}
	if row.Founded == nil || *row.Founded != "1900" {
		t.Fatalf("unexpected founded: %v", row.Founded)
	}
	if row.Season == nil || *row.Season != "2024" || row.SeasonClean == nil || *row.SeasonClean != "2024" {
		t.Fatalf("unexpected season mapping: %v %v", row.Season, row.SeasonClean)
	}
	if row.TablePosition == nil || *row.TablePosition != 1 || row.PerformanceRank == nil || *row.PerformanceRank != 2 {
		t.Fatalf("unexpected statistics mapping: %v %v", row.TablePosition, row.PerformanceRank)
	}
	if row.CompetitionID == nil || *row.CompetitionID != 88 {
		t.Fatalf("unexpected competition id: %v", row.CompetitionID)
	}
	if len(row.OfficialSites) != 1 || row.OfficialSites[0] != "https://www.ajax.nl" {
		t.Fatalf("unexpected official sites: %v", row.OfficialSites)
	}
}

func TestSaveLeagueTeamsAbsentBlocksStayNull(t *testing.T) {
	t.Parallel()

	repo := &teamRepoStub{}
	service := NewTeamSyncService(repo)

	err := service.SaveLeagueTeams(context.Background(), []ExternalTeam{
		{Team: ExternalTeamCore{ID: 7}},
	})
	if err != nil {
		t.Fatalf("save league teams: %v", err)
	}

	row := repo.upserted[0][0]
	if row.Name != nil || row.CleanName != nil || row.Season != nil || row.CompetitionID != nil || row.Risk != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", row)
	}
	if row.OfficialSites != nil {
		t.Fatalf("expected no official sites, got %v", row.OfficialSites)
	}
}

func TestSaveLeagueTeamsPropagatesStorageError(t *testing.T) {
	t.Parallel()

	storageErr := errors.New("upsert teams: connection refused")
	repo := &teamRepoStub{upsertErr: storageErr}
	service := NewTeamSyncService(repo)

	err := service.SaveLeagueTeams(context.Background(), []ExternalTeam{{Team: ExternalTeamCore{ID: 1}}})
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestSaveLeagueTeamsEmptyBatchIsNoop(t *testing.T) {
	t.Parallel()

	repo := &teamRepoStub{}
	service := NewTeamSyncService(repo)

	if err := service.SaveLeagueTeams(context.Background(), nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if len(repo.upserted) != 0 {
		t.Fatalf("expected no upsert call, got %+v", repo.upserted)
	}
}
