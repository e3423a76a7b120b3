package postgres

import (
	"strings"
	"testing"

	qb "github.com/rakhafdl/goalstore/internal/platform/querybuilder"
)

// upsertAssignments parses a DO UPDATE SET suffix into the set of
// refreshed columns, failing on any assignment that is not a plain
// col = EXCLUDED.col refresh.
func upsertAssignments(t *testing.T, suffix string) map[string]bool {
	t.Helper()

	marker := "DO UPDATE SET"
	idx := strings.Index(suffix, marker)
	if idx < 0 {
		t.Fatalf("suffix has no DO UPDATE SET clause: %q", suffix)
	}

	assignments := make(map[string]bool)
	for _, clause := range strings.Split(suffix[idx+len(marker):], ",") {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 {
			t.Fatalf("malformed assignment %q", clause)
		}
		column := strings.TrimSpace(parts[0])
		if got, want := strings.TrimSpace(parts[1]), "EXCLUDED."+column; got != want {
			t.Fatalf("assignment for %s is %q, want %q", column, got, want)
		}
		assignments[column] = true
	}
	return assignments
}

// insertedColumns extracts the column list from a generated
// INSERT INTO table (col, ...) VALUES query.
func insertedColumns(t *testing.T, query string) []string {
	t.Helper()

	open := strings.Index(query, "(")
	closing := strings.Index(query, ")")
	if open < 0 || closing < open {
		t.Fatalf("no column list in query: %q", query)
	}
	return strings.Split(query[open+1:closing], ", ")
}

func assertRefreshesAllBut(t *testing.T, query, suffix string, kept ...string) {
	t.Helper()

	keptSet := make(map[string]bool, len(kept))
	for _, column := range kept {
		keptSet[column] = true
	}

	assignments := upsertAssignments(t, suffix)
	columns := insertedColumns(t, query)
	for _, column := range columns {
		if keptSet[column] {
			if assignments[column] {
				t.Fatalf("column %s must keep its first-seen value, but is refreshed", column)
			}
			continue
		}
		if !assignments[column] {
			t.Fatalf("column %s is inserted but not refreshed on conflict", column)
		}
	}
	if len(assignments) != len(columns)-len(kept) {
		t.Fatalf("suffix refreshes %d columns, want %d", len(assignments), len(columns)-len(kept))
	}
}

func TestTeamUpsertRefreshesAllButID(t *testing.T) {
	query, _, err := qb.InsertModels("teams", []teamInsertModel{{}}, teamUpsertSuffix)
	if err != nil {
		t.Fatalf("build upsert teams query: %v", err)
	}
	if !strings.Contains(teamUpsertSuffix, "ON CONFLICT (id)") {
		t.Fatalf("team upsert must conflict on id: %q", teamUpsertSuffix)
	}
	assertRefreshesAllBut(t, query, teamUpsertSuffix, "id")
}

func TestFixtureUpsertKeepsVenueColumns(t *testing.T) {
	query, _, err := qb.InsertModels("fixtures", []fixtureInsertModel{{}}, fixtureUpsertSuffix)
	if err != nil {
		t.Fatalf("build upsert fixtures query: %v", err)
	}
	if !strings.Contains(fixtureUpsertSuffix, "ON CONFLICT (fixture_id)") {
		t.Fatalf("fixture upsert must conflict on fixture_id: %q", fixtureUpsertSuffix)
	}
	assertRefreshesAllBut(t, query, fixtureUpsertSuffix,
		"fixture_id", "venue_id", "venue_name", "venue_city")

	// A resubmitted fixture must take the newer status and round.
	assignments := upsertAssignments(t, fixtureUpsertSuffix)
	if !assignments["status_short"] || !assignments["status_long"] || !assignments["league_round"] {
		t.Fatalf("status and round columns must refresh: %v", assignments)
	}
}

func TestPredictionUpsertRefreshesAllButFixtureID(t *testing.T) {
	query, _, err := qb.InsertModels("predictions", []predictionInsertModel{{}}, predictionUpsertSuffix)
	if err != nil {
		t.Fatalf("build upsert predictions query: %v", err)
	}
	if !strings.Contains(predictionUpsertSuffix, "ON CONFLICT (fixture_id)") {
		t.Fatalf("prediction upsert must conflict on fixture_id: %q", predictionUpsertSuffix)
	}
	assertRefreshesAllBut(t, query, predictionUpsertSuffix, "fixture_id")
}
