package stats

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestSectionDecodesProviderBlock(t *testing.T) {
	t.Parallel()

	payload := `{
		"position": "3",
		"matchesPlayed": 34,
		"wins": 21,
		"goalsScoredHome": 40,
		"chance2scoreHome": 71.5,
		"cornersWonOver0_5": 96.9,
		"BTTS": 55.9,
		"BTTSOver0_5": null,
		"xG": 2.1,
		"shotsTakenFirstHalf": 6.4,
		"ppgHome": 2.35
	}`

	var section Section
	if err := sonic.Unmarshal([]byte(payload), &section); err != nil {
		t.Fatalf("unmarshal stats section: %v", err)
	}

	if section.Position != "3" || section.MatchesPlayed != 34 || section.Wins != 21 {
		t.Fatalf("unexpected table fields: %+v", section)
	}
	if section.GoalsScoredHome != 40 || section.Chance2ScoreHome != 71.5 {
		t.Fatalf("unexpected home split fields: %+v", section)
	}
	if section.CornersWonOver05 != 96.9 || section.BTTS != 55.9 || section.XG != 2.1 {
		t.Fatalf("unexpected rate fields: %+v", section)
	}
	if section.BTTSOver05 != nil {
		t.Fatalf("expected null BTTSOver0_5 to stay nil, got %v", *section.BTTSOver05)
	}
	if section.ShotsTakenFirstHalf == nil || *section.ShotsTakenFirstHalf != 6.4 {
		t.Fatalf("unexpected shotsTakenFirstHalf: %v", section.ShotsTakenFirstHalf)
	}
	if section.PPGHome != 2.35 {
		t.Fatalf("unexpected ppgHome: %v", section.PPGHome)
	}
	if section.Games != nil {
		t.Fatalf("expected absent games to stay nil, got %v", section.Games)
	}
}
