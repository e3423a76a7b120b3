package prediction

// Prediction is one flattened pre-match forecast row keyed by
// fixture id. Every column except the key is refreshed on conflict.
type Prediction struct {
	FixtureID                int64
	WinnerID                 *int64
	WinnerName               *string
	WinnerComment            *string
	WinOrDraw                *bool
	UnderOver                *string
	GoalsHome                *string
	GoalsAway                *string
	Advice                   *string
	PercentHome              *string
	PercentDraw              *string
	PercentAway              *string
	LeagueID                 *int64
	LeagueName               *string
	LeagueCountry            *string
	LeagueLogo               *string
	LeagueFlag               *string
	LeagueSeason             *int
	HomeTeamID               *int64
	HomeTeamName             *string
	HomeTeamLogo             *string
	HomeLast5Form            *string
	HomeLast5Att             *string
	HomeLast5Def             *string
	HomeGoalsForTotal        *int
	HomeGoalsAgainstTotal    *int
	AwayTeamID               *int64
	AwayTeamName             *string
	AwayTeamLogo             *string
	AwayLast5Form            *string
	AwayLast5Att             *string
	AwayLast5Def             *string
	AwayGoalsForTotal        *int
	AwayGoalsAgainstTotal    *int
	ComparisonFormHome       *string
	ComparisonFormAway       *string
	ComparisonAttHome        *string
	ComparisonAttAway        *string
	ComparisonDefHome        *string
	ComparisonDefAway        *string
	ComparisonPoissonHome    *string
	ComparisonPoissonAway    *string
	ComparisonHeadToHeadHome *string
	ComparisonHeadToHeadAway *string
}
