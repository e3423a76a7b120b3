package fixture

// Fixture is one flattened fixture row from the nested provider
// payload. Venue columns are fixed at first insert; every other
// column is refreshed when the same fixture arrives again.
type Fixture struct {
	FixtureID          int64
	Referee            *string
	Timezone           *string
	FixtureDate        *string
	Timestamp          *int64
	FirstPeriodStart   *int64
	SecondPeriodStart  *int64
	VenueID            *int64
	VenueName          *string
	VenueCity          *string
	StatusLong         *string
	StatusShort        *string
	StatusElapsed      *int
	LeagueID           *int64
	LeagueName         *string
	LeagueCountry      *string
	LeagueLogo         *string
	LeagueFlag         *string
	LeagueSeason       *int
	LeagueRound        *string
	HomeTeamID         *int64
	HomeTeamName       *string
	HomeTeamLogo       *string
	HomeTeamWinner     *bool
	AwayTeamID         *int64
	AwayTeamName       *string
	AwayTeamLogo       *string
	AwayTeamWinner     *bool
	HomeGoals          *int
	AwayGoals          *int
	HalftimeScoreHome  *int
	HalftimeScoreAway  *int
	FulltimeScoreHome  *int
	FulltimeScoreAway  *int
	ExtraTimeScoreHome *int
	ExtraTimeScoreAway *int
	PenaltyScoreHome   *int
	PenaltyScoreAway   *int
}
