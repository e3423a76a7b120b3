package stats

// Section carries a provider-computed team statistics block. Values
// pass through unchanged; nothing here is derived or aggregated
// locally. Pointer fields may be absent in provider payloads.
type Section struct {
	Position                     string   `json:"position"`
	MatchesPlayed                int      `json:"matchesPlayed"`
	Wins                         int      `json:"wins"`
	Draws                        int      `json:"draws"`
	Losses                       int      `json:"losses"`
	Points                       int      `json:"points"`
	GoalsScored                  int      `json:"goalsScored"`
	GoalsScoredHome              int      `json:"goalsScoredHome"`
	GoalsScoredAway              int      `json:"goalsScoredAway"`
	GoalsConceded                int      `json:"goalsConceded"`
	GoalsConcededHome            int      `json:"goalsConcededHome"`
	GoalsConcededAway            int      `json:"goalsConcededAway"`
	Chance2Score                 float64  `json:"chance2score"`
	Chance2ScoreHome             float64  `json:"chance2scoreHome"`
	Chance2ScoreAway             float64  `json:"chance2scoreAway"`
	CornersWonAvg                float64  `json:"cornersWonAvg"`
	CornersWonOver05             float64  `json:"cornersWonOver0_5"`
	CornersWonOver15             float64  `json:"cornersWonOver1_5"`
	CornersWonHighest            int      `json:"cornersWonHighest"`
	BTTS                         float64  `json:"BTTS"`
	BTTSOver05                   *float64 `json:"BTTSOver0_5"`
	BTTSOver15                   *float64 `json:"BTTSOver1_5"`
	BTTSHighest                  *float64 `json:"BTTSHighest"`
	XG                           float64  `json:"xG"`
	DXG                          float64  `json:"dxG"`
	ShotsTaken                   float64  `json:"shotsTaken"`
	ShotsTakenFirstHalf          *float64 `json:"shotsTakenFirstHalf"`
	ShotsTakenSecondHalf         *float64 `json:"shotsTakenSecondHalf"`
	ShotsConceded                float64  `json:"shotsConceded"`
	ShotsConcededFirstHalf       *float64 `json:"shotsConcededFirstHalf"`
	ShotsConcededSecondHalf      *float64 `json:"shotsConcededSecondHalf"`
	ShotsCR                      float64  `json:"shotsCR"`
	ShotsConcededCR              float64  `json:"shotsConcededCR"`
	ShotsOnTarget                float64  `json:"shotsOnTarget"`
	ShotsOnTargetHome            float64  `json:"shotsOnTargetHome"`
	ShotsOnTargetAway            float64  `json:"shotsOnTargetAway"`
	PossessionAvg                float64  `json:"possessionAvg"`
	PossessionHome               float64  `json:"possessionHome"`
	PossessionAway               float64  `json:"possessionAway"`
	CleanSheets                  int      `json:"cleanSheets"`
	CleanSheetsHome              int      `json:"cleanSheetsHome"`
	CleanSheetsAway              int      `json:"cleanSheetsAway"`
	TotalFoulsCommitted          int      `json:"totalFoulsCommitted"`
	TotalFoulsCommittedAgainst   int      `json:"totalFoulsCommittedAgainst"`
	DangerousAttacks             int      `json:"dangerousAttacks"`
	DangerousAttacksHome         int      `json:"dangerousAttacksHome"`
	DangerousAttacksAway         int      `json:"dangerousAttacksAway"`
	DangerousAttacksConceded     int      `json:"dangerousAttacksConceded"`
	DangerousAttacksConcededHome int      `json:"dangerousAttacksConcededHome"`
	DangerousAttacksConcededAway int      `json:"dangerousAttacksConcededAway"`
	PPGHome                      float64  `json:"ppgHome"`
	PPGAway                      float64  `json:"ppgAway"`
	Games                        []any    `json:"games,omitempty"`
}
