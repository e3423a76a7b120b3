package postgres

import "github.com/rakhafdl/goalstore/internal/domain/fixture"

type fixtureInsertModel struct {
	FixtureID          int64   `db:"fixture_id"`
	Referee            *string `db:"referee"`
	Timezone           *string `db:"timezone"`
	FixtureDate        *string `db:"fixture_date"`
	Timestamp          *int64  `db:"timestamp"`
	FirstPeriodStart   *int64  `db:"first_period_start"`
	SecondPeriodStart  *int64  `db:"second_period_start"`
	VenueID            *int64  `db:"venue_id"`
	VenueName          *string `db:"venue_name"`
	VenueCity          *string `db:"venue_city"`
	StatusLong         *string `db:"status_long"`
	StatusShort        *string `db:"status_short"`
	StatusElapsed      *int    `db:"status_elapsed"`
	LeagueID           *int64  `db:"league_id"`
	LeagueName         *string `db:"league_name"`
	LeagueCountry      *string `db:"league_country"`
	LeagueLogo         *string `db:"league_logo"`
	LeagueFlag         *string `db:"league_flag"`
	LeagueSeason       *int    `db:"league_season"`
	LeagueRound        *string `db:"league_round"`
	HomeTeamID         *int64  `db:"home_team_id"`
	HomeTeamName       *string `db:"home_team_name"`
	HomeTeamLogo       *string `db:"home_team_logo"`
	HomeTeamWinner     *bool   `db:"home_team_winner"`
	AwayTeamID         *int64  `db:"away_team_id"`
	AwayTeamName       *string `db:"away_team_name"`
	AwayTeamLogo       *string `db:"away_team_logo"`
	AwayTeamWinner     *bool   `db:"away_team_winner"`
	HomeGoals          *int    `db:"home_goals"`
	AwayGoals          *int    `db:"away_goals"`
	HalftimeScoreHome  *int    `db:"halftime_score_home"`
	HalftimeScoreAway  *int    `db:"halftime_score_away"`
	FulltimeScoreHome  *int    `db:"fulltime_score_home"`
	FulltimeScoreAway  *int    `db:"fulltime_score_away"`
	ExtraTimeScoreHome *int    `db:"extra_time_score_home"`
	ExtraTimeScoreAway *int    `db:"extra_time_score_away"`
	PenaltyScoreHome   *int    `db:"penalty_score_home"`
	PenaltyScoreAway   *int    `db:"penalty_score_away"`
}

func newFixtureInsertModel(f fixture.Fixture) fixtureInsertModel {
	return fixtureInsertModel{
		FixtureID:          f.FixtureID,
		Referee:            f.Referee,
		Timezone:           f.Timezone,
		FixtureDate:        f.FixtureDate,
		Timestamp:          f.Timestamp,
		FirstPeriodStart:   f.FirstPeriodStart,
		SecondPeriodStart:  f.SecondPeriodStart,
		VenueID:            f.VenueID,
		VenueName:          f.VenueName,
		VenueCity:          f.VenueCity,
		StatusLong:         f.StatusLong,
		StatusShort:        f.StatusShort,
		StatusElapsed:      f.StatusElapsed,
		LeagueID:           f.LeagueID,
		LeagueName:         f.LeagueName,
		LeagueCountry:      f.LeagueCountry,
		LeagueLogo:         f.LeagueLogo,
		LeagueFlag:         f.LeagueFlag,
		LeagueSeason:       f.LeagueSeason,
		LeagueRound:        f.LeagueRound,
		HomeTeamID:         f.HomeTeamID,
		HomeTeamName:       f.HomeTeamName,
		HomeTeamLogo:       f.HomeTeamLogo,
		HomeTeamWinner:     f.HomeTeamWinner,
		AwayTeamID:         f.AwayTeamID,
		AwayTeamName:       f.AwayTeamName,
		AwayTeamLogo:       f.AwayTeamLogo,
		AwayTeamWinner:     f.AwayTeamWinner,
		HomeGoals:          f.HomeGoals,
		AwayGoals:          f.AwayGoals,
		HalftimeScoreHome:  f.HalftimeScoreHome,
		HalftimeScoreAway:  f.HalftimeScoreAway,
		FulltimeScoreHome:  f.FulltimeScoreHome,
		FulltimeScoreAway:  f.FulltimeScoreAway,
		ExtraTimeScoreHome: f.ExtraTimeScoreHome,
		ExtraTimeScoreAway: f.ExtraTimeScoreAway,
		PenaltyScoreHome:   f.PenaltyScoreHome,
		PenaltyScoreAway:   f.PenaltyScoreAway,
	}
}
