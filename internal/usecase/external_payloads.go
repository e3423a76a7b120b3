package usecase

// Provider-shaped ingestion payloads. Every optional block or field is
// a pointer so absent provider values survive as nil all the way to
// the row instead of being defaulted. The json tags mirror the
// provider wire formats, so both the HTTP ingestion handlers and the
// API clients decode straight into these types.

// ExternalTeam is one element of a season team listing.
type ExternalTeam struct {
	Team       ExternalTeamCore        `json:"team"`
	Season     *ExternalTeamSeason     `json:"season"`
	Statistics *ExternalTeamStatistics `json:"statistics"`
	League     *ExternalTeamLeague     `json:"league"`
	Risk       *int                    `json:"risk"`
}

type ExternalTeamCore struct {
	ID               int64    `json:"id"`
	Name             *string  `json:"name"`
	Country          *string  `json:"country"`
	Founded          *int     `json:"founded"`
	Logo             *string  `json:"logo"`
	Website          *string  `json:"website"`
	FullName         *string  `json:"full_name"`
	AlternativeNames []string `json:"alternative_names"`
}

type ExternalTeamSeason struct {
	Current *int    `json:"current"`
	Format  *string `json:"format"`
}

type ExternalTeamStatistics struct {
	Rank            *int `json:"rank"`
	PerformanceRank *int `json:"performance_rank"`
}

type ExternalTeamLeague struct {
	ID *int64 `json:"id"`
}

// ExternalMatch is one flat match record. Stats fields travel with the
// match; a nil HomeGoalCount means the provider sent no stats block,
// and a nil OddsFT1 means no odds block.
type ExternalMatch struct {
	ID                 int64    `json:"id"`
	HomeID             int64    `json:"homeID"`
	AwayID             int64    `json:"awayID"`
	Season             *string  `json:"season"`
	Status             *string  `json:"status"`
	DateUnix           *int64   `json:"date_unix"`
	CompetitionID      *int64   `json:"competition_id"`
	StadiumName        *string  `json:"stadium_name"`
	Attendance         *int     `json:"attendance"`
	RefereeID          *int64   `json:"refereeID"`
	HomeGoalCount      *int     `json:"homeGoalCount"`
	AwayGoalCount      *int     `json:"awayGoalCount"`
	TeamACorners       *int     `json:"team_a_corners"`
	TeamBCorners       *int     `json:"team_b_corners"`
	TeamAShotsOnTarget *int     `json:"team_a_shotsOnTarget"`
	TeamBShotsOnTarget *int     `json:"team_b_shotsOnTarget"`
	TeamAPossession    *int     `json:"team_a_possession"`
	TeamBPossession    *int     `json:"team_b_possession"`
	TeamAXG            *float64 `json:"team_a_xg"`
	TeamBXG            *float64 `json:"team_b_xg"`
	OddsFT1            *float64 `json:"odds_ft_1"`
	OddsFTX            *float64 `json:"odds_ft_x"`
	OddsFT2            *float64 `json:"odds_ft_2"`
	OddsBTTSYes        *float64 `json:"odds_btts_yes"`
	OddsBTTSNo         *float64 `json:"odds_btts_no"`
	OddsFTOver25       *float64 `json:"odds_ft_over25"`
	OddsFTUnder25      *float64 `json:"odds_ft_under25"`
}

// ExternalFixture is one element of a fixtures listing, nested the way
// the provider ships it.
type ExternalFixture struct {
	Fixture *ExternalFixtureCore   `json:"fixture"`
	League  *ExternalFixtureLeague `json:"league"`
	Teams   *ExternalFixtureTeams  `json:"teams"`
	Goals   *ExternalScorePair     `json:"goals"`
	Score   *ExternalFixtureScore  `json:"score"`
}

type ExternalFixtureCore struct {
	ID        *int64                  `json:"id"`
	Referee   *string                 `json:"referee"`
	Timezone  *string                 `json:"timezone"`
	Date      *string                 `json:"date"`
	Timestamp *int64                  `json:"timestamp"`
	Periods   *ExternalFixturePeriods `json:"periods"`
	Venue     *ExternalFixtureVenue   `json:"venue"`
	Status    *ExternalFixtureStatus  `json:"status"`
}

type ExternalFixturePeriods struct {
	First  *int64 `json:"first"`
	Second *int64 `json:"second"`
}

type ExternalFixtureVenue struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
	City *string `json:"city"`
}

type ExternalFixtureStatus struct {
	Long    *string `json:"long"`
	Short   *string `json:"short"`
	Elapsed *int    `json:"elapsed"`
}

type ExternalFixtureLeague struct {
	ID      *int64  `json:"id"`
	Name    *string `json:"name"`
	Country *string `json:"country"`
	Logo    *string `json:"logo"`
	Flag    *string `json:"flag"`
	Season  *int    `json:"season"`
	Round   *string `json:"round"`
}

type ExternalFixtureTeams struct {
	Home *ExternalFixtureTeam `json:"home"`
	Away *ExternalFixtureTeam `json:"away"`
}

type ExternalFixtureTeam struct {
	ID     *int64  `json:"id"`
	Name   *string `json:"name"`
	Logo   *string `json:"logo"`
	Winner *bool   `json:"winner"`
}

type ExternalScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type ExternalFixtureScore struct {
	Halftime  *ExternalScorePair `json:"halftime"`
	Fulltime  *ExternalScorePair `json:"fulltime"`
	Extratime *ExternalScorePair `json:"extratime"`
	Penalty   *ExternalScorePair `json:"penalty"`
}

// ExternalPrediction is one pre-match forecast. The provider returns
// it per fixture, so FixtureID is filled by the fetching side.
type ExternalPrediction struct {
	FixtureID   int64                         `json:"fixture_id"`
	Predictions *ExternalPredictionBlock      `json:"predictions"`
	League      *ExternalFixtureLeague        `json:"league"`
	Teams       *ExternalPredictionTeams      `json:"teams"`
	Comparison  *ExternalPredictionComparison `json:"comparison"`
}

type ExternalPredictionBlock struct {
	Winner    *ExternalPredictionWinner  `json:"winner"`
	WinOrDraw *bool                      `json:"win_or_draw"`
	UnderOver *string                    `json:"under_over"`
	Goals     *ExternalPredictionGoals   `json:"goals"`
	Advice    *string                    `json:"advice"`
	Percent   *ExternalPredictionPercent `json:"percent"`
}

type ExternalPredictionWinner struct {
	ID      *int64  `json:"id"`
	Name    *string `json:"name"`
	Comment *string `json:"comment"`
}

type ExternalPredictionGoals struct {
	Home *string `json:"home"`
	Away *string `json:"away"`
}

type ExternalPredictionPercent struct {
	Home *string `json:"home"`
	Draw *string `json:"draw"`
	Away *string `json:"away"`
}

type ExternalPredictionTeams struct {
	Home *ExternalPredictionTeam `json:"home"`
	Away *ExternalPredictionTeam `json:"away"`
}

type ExternalPredictionTeam struct {
	ID    *int64                  `json:"id"`
	Name  *string                 `json:"name"`
	Logo  *string                 `json:"logo"`
	Last5 *ExternalPredictionLast5 `json:"last_5"`
}

type ExternalPredictionLast5 struct {
	Form  *string                       `json:"form"`
	Att   *string                       `json:"att"`
	Def   *string                       `json:"def"`
	Goals *ExternalPredictionLast5Goals `json:"goals"`
}

type ExternalPredictionLast5Goals struct {
	For     *ExternalPredictionGoalsTotal `json:"for"`
	Against *ExternalPredictionGoalsTotal `json:"against"`
}

type ExternalPredictionGoalsTotal struct {
	Total *int `json:"total"`
}

type ExternalPredictionComparison struct {
	Form                *ExternalComparisonPair `json:"form"`
	Att                 *ExternalComparisonPair `json:"att"`
	Def                 *ExternalComparisonPair `json:"def"`
	PoissonDistribution *ExternalComparisonPair `json:"poisson_distribution"`
	H2H                 *ExternalComparisonPair `json:"h2h"`
}

type ExternalComparisonPair struct {
	Home *string `json:"home"`
	Away *string `json:"away"`
}
