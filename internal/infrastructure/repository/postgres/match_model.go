package postgres

type matchInsertModel struct {
	ID            int64   `db:"id"`
	HomeTeamID    int64   `db:"home_team_id"`
	AwayTeamID    int64   `db:"away_team_id"`
	Season        *string `db:"season"`
	Status        *string `db:"status"`
	DateUnix      *int64  `db:"date_unix"`
	CompetitionID *int64  `db:"competition_id"`
	StadiumName   *string `db:"stadium_name"`
	Attendance    *int    `db:"attendance"`
	RefereeID     *int64  `db:"referee_id"`
}

type matchTableModel = matchInsertModel

type matchStatsInsertModel struct {
	MatchID           int64    `db:"match_id"`
	HomeGoals         *int     `db:"home_goals"`
	AwayGoals         *int     `db:"away_goals"`
	HomeCorners       *int     `db:"home_corners"`
	AwayCorners       *int     `db:"away_corners"`
	HomeShotsOnTarget *int     `db:"home_shots_on_target"`
	AwayShotsOnTarget *int     `db:"away_shots_on_target"`
	HomePossession    *int     `db:"home_possession"`
	AwayPossession    *int     `db:"away_possession"`
	HomeXG            *float64 `db:"home_xg"`
	AwayXG            *float64 `db:"away_xg"`
}

type matchStatsTableModel = matchStatsInsertModel

type matchOddsInsertModel struct {
	MatchID int64    `db:"match_id"`
	FTHome  *float64 `db:"odds_ft_1"`
	FTDraw  *float64 `db:"odds_ft_x"`
	FTAway  *float64 `db:"odds_ft_2"`
	BTTSYes *float64 `db:"odds_btts_yes"`
	BTTSNo  *float64 `db:"odds_btts_no"`
	Over25  *float64 `db:"odds_over25"`
	Under25 *float64 `db:"odds_under25"`
}

type matchOddsTableModel = matchOddsInsertModel
