package usecase

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestExternalMatchDecodeDistinguishesAbsentBlocks(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 579101,
		"homeID": 59,
		"awayID": 93,
		"season": "2019/2020",
		"status": "complete",
		"date_unix": 1566053100,
		"homeGoalCount": 3,
		"awayGoalCount": 0,
		"team_a_corners": 7,
		"team_a_possession": 62,
		"team_a_xg": 2.41
	}`

	var item ExternalMatch
	if err := sonic.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("decode match payload: %v", err)
	}

	if item.ID != 579101 || item.HomeID != 59 || item.AwayID != 93 {
		t.Fatalf("unexpected identity fields: %+v", item)
	}
	if item.HomeGoalCount == nil || *item.HomeGoalCount != 3 {
		t.Fatalf("home goal count must decode: %v", item.HomeGoalCount)
	}
	if item.AwayGoalCount == nil || *item.AwayGoalCount != 0 {
		t.Fatalf("an explicit zero must stay distinguishable from absent: %v", item.AwayGoalCount)
	}
	if item.OddsFT1 != nil {
		t.Fatalf("absent odds must stay nil: %v", item.OddsFT1)
	}
	if item.TeamAXG == nil || *item.TeamAXG != 2.41 {
		t.Fatalf("unexpected xg: %v", item.TeamAXG)
	}
}

func TestExternalFixtureDecodePartialNesting(t *testing.T) {
	t.Parallel()

	raw := `{
		"fixture": {
			"id": 867946,
			"date": "2022-09-04T13:00:00+00:00",
			"status": {"short": "NS"}
		},
		"league": {"id": 88, "round": "Regular Season - 5"}
	}`

	var item ExternalFixture
	if err := sonic.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("decode fixture payload: %v", err)
	}

	if item.Fixture == nil || item.Fixture.ID == nil || *item.Fixture.ID != 867946 {
		t.Fatalf("unexpected fixture id: %+v", item.Fixture)
	}
	if item.Fixture.Venue != nil || item.Fixture.Periods != nil {
		t.Fatalf("absent nested objects must stay nil")
	}
	if item.Fixture.Status == nil || item.Fixture.Status.Short == nil || *item.Fixture.Status.Short != "NS" {
		t.Fatalf("unexpected status: %+v", item.Fixture.Status)
	}
	if item.Teams != nil || item.Goals != nil || item.Score != nil {
		t.Fatalf("absent top-level blocks must stay nil")
	}
	if item.League == nil || item.League.Round == nil || *item.League.Round != "Regular Season - 5" {
		t.Fatalf("unexpected league block: %+v", item.League)
	}
}
