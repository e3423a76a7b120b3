package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rakhafdl/goalstore/internal/platform/cache"
)

func TestListMatchesForJSONBlankInputs(t *testing.T) {
	t.Parallel()

	repo := &teamRepoStub{cleanNames: []*string{ptrString("psv"), ptrString("afcajax")}}
	service := NewDisplayService(repo, nil)

	for _, tc := range []struct{ date, league string }{
		{date: "", league: "Eredivisie"},
		{date: "2024-05-12", league: ""},
		{date: " ", league: " "},
	} {
		rows, err := service.ListMatchesForJSON(context.Background(), tc.date, tc.league)
		if err != nil {
			t.Fatalf("list matches for json: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected empty result for date=%q league=%q, got %v", tc.date, tc.league, rows)
		}
	}
}

func TestListMatchesForJSONRows(t *testing.T) {
	t.Parallel()

	repo := &teamRepoStub{cleanNames: []*string{ptrString("psv"), ptrString("feyenoord"), ptrString("afcajax")}}
	service := NewDisplayService(repo, nil)

	rows, err := service.ListMatchesForJSON(context.Background(), "2024-05-12", "Eredivisie")
	if err != nil {
		t.Fatalf("list matches for json: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Name == nil || *rows[0].Name != "psv" || rows[0].Logo == nil || *rows[0].Logo != "psv" {
		t.Fatalf("clean name must double as name and logo: %+v", rows[0])
	}
	if rows[0].UEFAEuroQualifiersGroup != nil || rows[0].UEFAEuroChampionshipTable != nil {
		t.Fatalf("placeholder fields must stay null: %+v", rows[0])
	}
}

func TestListMatchesForJSONNullCleanNames(t *testing.T) {
	t.Parallel()

	repo := &teamRepoStub{cleanNames: []*string{ptrString("psv"), nil}}
	service := NewDisplayService(repo, nil)

	rows, err := service.ListMatchesForJSON(context.Background(), "2024-05-12", "Eredivisie")
	if err != nil {
		t.Fatalf("list matches for json: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name == nil || *rows[0].Name != "psv" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Name != nil || rows[1].Logo != nil {
		t.Fatalf("expected null name and logo for nameless team, got %+v", rows[1])
	}
}

func TestListMatchesForJSONUsesCache(t *testing.T) {
	t.Parallel()

	repo := &teamRepoStub{cleanNames: []*string{ptrString("afcajax")}}
	service := NewDisplayService(repo, cache.NewStore(time.Minute))

	for _, tc := range []struct{ date, league string }{
		{date: "2024-05-12", league: "Eredivisie"},
		{date: "2024-05-13", league: "Eredivisie"},
		{date: "2024-05-12", league: "Premier League"},
	} {
		rows, err := service.ListMatchesForJSON(context.Background(), tc.date, tc.league)
		if err != nil {
			t.Fatalf("list matches for json: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
	}

	if repo.listCalls != 1 {
		t.Fatalf("expected a single storage read across all inputs, got %d", repo.listCalls)
	}
}
