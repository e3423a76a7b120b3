package postgres

import "github.com/rakhafdl/goalstore/internal/domain/prediction"

type predictionInsertModel struct {
	FixtureID             int64   `db:"fixture_id"`
	WinnerID              *int64  `db:"prediction_winner_id"`
	WinnerName            *string `db:"prediction_winner_name"`
	WinnerComment         *string `db:"prediction_winner_comment"`
	WinOrDraw             *bool   `db:"prediction_win_or_draw"`
	UnderOver             *string `db:"prediction_under_over"`
	GoalsHome             *string `db:"prediction_goals_home"`
	GoalsAway             *string `db:"prediction_goals_away"`
	Advice                *string `db:"prediction_advice"`
	PercentHome           *string `db:"prediction_percent_home"`
	PercentDraw           *string `db:"prediction_percent_draw"`
	PercentAway           *string `db:"prediction_percent_away"`
	LeagueID              *int64  `db:"league_id"`
	LeagueName            *string `db:"league_name"`
	LeagueCountry         *string `db:"league_country"`
	LeagueLogo            *string `db:"league_logo"`
	LeagueFlag            *string `db:"league_flag"`
	LeagueSeason          *int    `db:"league_season"`
	HomeTeamID            *int64  `db:"home_team_id"`
	HomeTeamName          *string `db:"home_team_name"`
	HomeTeamLogo          *string `db:"home_team_logo"`
	HomeLast5Form         *string `db:"home_last_5_form"`
	HomeLast5Att          *string `db:"home_last_5_att"`
	HomeLast5Def          *string `db:"home_last_5_def"`
	HomeGoalsForTotal     *int    `db:"home_goals_for_total"`
	HomeGoalsAgainstTotal *int    `db:"home_goals_against_total"`
	AwayTeamID            *int64  `db:"away_team_id"`
	AwayTeamName          *string `db:"away_team_name"`
	AwayTeamLogo          *string `db:"away_team_logo"`
	AwayLast5Form         *string `db:"away_last_5_form"`
	AwayLast5Att          *string `db:"away_last_5_att"`
	AwayLast5Def          *string `db:"away_last_5_def"`
	AwayGoalsForTotal     *int    `db:"away_goals_for_total"`
	AwayGoalsAgainstTotal *int    `db:"away_goals_against_total"`
	ComparisonFormHome    *string `db:"comparison_form_home"`
	ComparisonFormAway    *string `db:"comparison_form_away"`
	ComparisonAttHome     *string `db:"comparison_att_home"`
	ComparisonAttAway     *string `db:"comparison_att_away"`
	ComparisonDefHome     *string `db:"comparison_def_home"`
	ComparisonDefAway     *string `db:"comparison_def_away"`
	ComparisonPoissonHome *string `db:"comparison_poisson_distribution_home"`
	ComparisonPoissonAway *string `db:"comparison_poisson_distribution_away"`
	ComparisonH2HHome     *string `db:"comparison_h2h_home"`
	ComparisonH2HAway     *string `db:"comparison_h2h_away"`
}

func newPredictionInsertModel(p prediction.Prediction) predictionInsertModel {
	return predictionInsertModel{
		FixtureID:             p.FixtureID,
		WinnerID:              p.WinnerID,
		WinnerName:            p.WinnerName,
		WinnerComment:         p.WinnerComment,
		WinOrDraw:             p.WinOrDraw,
		UnderOver:             p.UnderOver,
		GoalsHome:             p.GoalsHome,
		GoalsAway:             p.GoalsAway,
		Advice:                p.Advice,
		PercentHome:           p.PercentHome,
		PercentDraw:           p.PercentDraw,
		PercentAway:           p.PercentAway,
		LeagueID:              p.LeagueID,
		LeagueName:            p.LeagueName,
		LeagueCountry:         p.LeagueCountry,
		LeagueLogo:            p.LeagueLogo,
		LeagueFlag:            p.LeagueFlag,
		LeagueSeason:          p.LeagueSeason,
		HomeTeamID:            p.HomeTeamID,
		HomeTeamName:          p.HomeTeamName,
		HomeTeamLogo:          p.HomeTeamLogo,
		HomeLast5Form:         p.HomeLast5Form,
		HomeLast5Att:          p.HomeLast5Att,
		HomeLast5Def:          p.HomeLast5Def,
		HomeGoalsForTotal:     p.HomeGoalsForTotal,
		HomeGoalsAgainstTotal: p.HomeGoalsAgainstTotal,
		AwayTeamID:            p.AwayTeamID,
		AwayTeamName:          p.AwayTeamName,
		AwayTeamLogo:          p.AwayTeamLogo,
		AwayLast5Form:         p.AwayLast5Form,
		AwayLast5Att:          p.AwayLast5Att,
		AwayLast5Def:          p.AwayLast5Def,
		AwayGoalsForTotal:     p.AwayGoalsForTotal,
		AwayGoalsAgainstTotal: p.AwayGoalsAgainstTotal,
		ComparisonFormHome:    p.ComparisonFormHome,
		ComparisonFormAway:    p.ComparisonFormAway,
		ComparisonAttHome:     p.ComparisonAttHome,
		ComparisonAttAway:     p.ComparisonAttAway,
		ComparisonDefHome:     p.ComparisonDefHome,
		ComparisonDefAway:     p.ComparisonDefAway,
		ComparisonPoissonHome: p.ComparisonPoissonHome,
		ComparisonPoissonAway: p.ComparisonPoissonAway,
		ComparisonH2HHome:     p.ComparisonHeadToHeadHome,
		ComparisonH2HAway:     p.ComparisonHeadToHeadAway,
	}
}
