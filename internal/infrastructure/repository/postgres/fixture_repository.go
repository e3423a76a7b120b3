package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rakhafdl/goalstore/internal/domain/fixture"
	qb "github.com/rakhafdl/goalstore/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

// fixtureUpsertSuffix refreshes every column except the key and the
// venue columns, which keep their first-seen values.
const fixtureUpsertSuffix = `ON CONFLICT (fixture_id)
DO UPDATE SET
    referee = EXCLUDED.referee,
    timezone = EXCLUDED.timezone,
    fixture_date = EXCLUDED.fixture_date,
    timestamp = EXCLUDED.timestamp,
    status_long = EXCLUDED.status_long,
    status_short = EXCLUDED.status_short,
    status_elapsed = EXCLUDED.status_elapsed,
    home_goals = EXCLUDED.home_goals,
    away_goals = EXCLUDED.away_goals,
    halftime_score_home = EXCLUDED.halftime_score_home,
    halftime_score_away = EXCLUDED.halftime_score_away,
    fulltime_score_home = EXCLUDED.fulltime_score_home,
    fulltime_score_away = EXCLUDED.fulltime_score_away,
    home_team_id = EXCLUDED.home_team_id,
    away_team_id = EXCLUDED.away_team_id,
    home_team_name = EXCLUDED.home_team_name,
    home_team_logo = EXCLUDED.home_team_logo,
    away_team_name = EXCLUDED.away_team_name,
    away_team_logo = EXCLUDED.away_team_logo,
    extra_time_score_home = EXCLUDED.extra_time_score_home,
    extra_time_score_away = EXCLUDED.extra_time_score_away,
    penalty_score_home = EXCLUDED.penalty_score_home,
    penalty_score_away = EXCLUDED.penalty_score_away,
    first_period_start = EXCLUDED.first_period_start,
    second_period_start = EXCLUDED.second_period_start,
    home_team_winner = EXCLUDED.home_team_winner,
    away_team_winner = EXCLUDED.away_team_winner,
    league_id = EXCLUDED.league_id,
    league_name = EXCLUDED.league_name,
    league_country = EXCLUDED.league_country,
    league_logo = EXCLUDED.league_logo,
    league_flag = EXCLUDED.league_flag,
    league_season = EXCLUDED.league_season,
    league_round = EXCLUDED.league_round`

// UpsertBatch inserts the batch in one statement, applying
// fixtureUpsertSuffix on conflicts.
func (r *FixtureRepository) UpsertBatch(ctx context.Context, fixtures []fixture.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}

	models := make([]fixtureInsertModel, 0, len(fixtures))
	for _, f := range fixtures {
		models = append(models, newFixtureInsertModel(f))
	}

	query, args, err := qb.InsertModels("fixtures", models, fixtureUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert fixtures query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert fixtures: %w", err)
	}

	return nil
}

func (r *FixtureRepository) ListIDsExcluding(ctx context.Context, excluded []int64) ([]int64, error) {
	excludedAny := make([]any, 0, len(excluded))
	for _, id := range excluded {
		excludedAny = append(excludedAny, id)
	}

	query, args, err := qb.Select("fixture_id").From("fixtures").
		Where(qb.NotIn("fixture_id", excludedAny)).
		OrderBy("fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixture ids query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select fixture ids: %w", err)
	}

	return ids, nil
}
