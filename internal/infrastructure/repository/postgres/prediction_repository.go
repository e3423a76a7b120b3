package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rakhafdl/goalstore/internal/domain/prediction"
	qb "github.com/rakhafdl/goalstore/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// predictionUpsertSuffix refreshes every column except the fixture id.
const predictionUpsertSuffix = `ON CONFLICT (fixture_id)
DO UPDATE SET
    prediction_winner_id = EXCLUDED.prediction_winner_id,
    prediction_winner_name = EXCLUDED.prediction_winner_name,
    prediction_winner_comment = EXCLUDED.prediction_winner_comment,
    prediction_win_or_draw = EXCLUDED.prediction_win_or_draw,
    prediction_under_over = EXCLUDED.prediction_under_over,
    prediction_goals_home = EXCLUDED.prediction_goals_home,
    prediction_goals_away = EXCLUDED.prediction_goals_away,
    prediction_advice = EXCLUDED.prediction_advice,
    prediction_percent_home = EXCLUDED.prediction_percent_home,
    prediction_percent_draw = EXCLUDED.prediction_percent_draw,
    prediction_percent_away = EXCLUDED.prediction_percent_away,
    league_id = EXCLUDED.league_id,
    league_name = EXCLUDED.league_name,
    league_country = EXCLUDED.league_country,
    league_logo = EXCLUDED.league_logo,
    league_flag = EXCLUDED.league_flag,
    league_season = EXCLUDED.league_season,
    home_team_id = EXCLUDED.home_team_id,
    home_team_name = EXCLUDED.home_team_name,
    home_team_logo = EXCLUDED.home_team_logo,
    home_last_5_form = EXCLUDED.home_last_5_form,
    home_last_5_att = EXCLUDED.home_last_5_att,
    home_last_5_def = EXCLUDED.home_last_5_def,
    home_goals_for_total = EXCLUDED.home_goals_for_total,
    home_goals_against_total = EXCLUDED.home_goals_against_total,
    away_team_id = EXCLUDED.away_team_id,
    away_team_name = EXCLUDED.away_team_name,
    away_team_logo = EXCLUDED.away_team_logo,
    away_last_5_form = EXCLUDED.away_last_5_form,
    away_last_5_att = EXCLUDED.away_last_5_att,
    away_last_5_def = EXCLUDED.away_last_5_def,
    away_goals_for_total = EXCLUDED.away_goals_for_total,
    away_goals_against_total = EXCLUDED.away_goals_against_total,
    comparison_form_home = EXCLUDED.comparison_form_home,
    comparison_form_away = EXCLUDED.comparison_form_away,
    comparison_att_home = EXCLUDED.comparison_att_home,
    comparison_att_away = EXCLUDED.comparison_att_away,
    comparison_def_home = EXCLUDED.comparison_def_home,
    comparison_def_away = EXCLUDED.comparison_def_away,
    comparison_poisson_distribution_home = EXCLUDED.comparison_poisson_distribution_home,
    comparison_poisson_distribution_away = EXCLUDED.comparison_poisson_distribution_away,
    comparison_h2h_home = EXCLUDED.comparison_h2h_home,
    comparison_h2h_away = EXCLUDED.comparison_h2h_away`

func (r *PredictionRepository) UpsertBatch(ctx context.Context, predictions []prediction.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	models := make([]predictionInsertModel, 0, len(predictions))
	for _, p := range predictions {
		models = append(models, newPredictionInsertModel(p))
	}

	query, args, err := qb.InsertModels("predictions", models, predictionUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert predictions query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert predictions: %w", err)
	}

	return nil
}

func (r *PredictionRepository) ListFixtureIDs(ctx context.Context) ([]int64, error) {
	query, args, err := qb.Select("fixture_id").From("predictions").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select prediction fixture ids query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select prediction fixture ids: %w", err)
	}

	return ids, nil
}
