package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rakhafdl/goalstore/internal/domain/team"
	qb "github.com/rakhafdl/goalstore/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// teamUpsertSuffix refreshes every column except the primary key.
const teamUpsertSuffix = `ON CONFLICT (id)
DO UPDATE SET
    name = EXCLUDED.name,
    clean_name = EXCLUDED.clean_name,
    english_name = EXCLUDED.english_name,
    country = EXCLUDED.country,
    founded = EXCLUDED.founded,
    image = EXCLUDED.image,
    season = EXCLUDED.season,
    season_clean = EXCLUDED.season_clean,
    url = EXCLUDED.url,
    table_position = EXCLUDED.table_position,
    performance_rank = EXCLUDED.performance_rank,
    risk = EXCLUDED.risk,
    season_format = EXCLUDED.season_format,
    competition_id = EXCLUDED.competition_id,
    full_name = EXCLUDED.full_name,
    alt_names = EXCLUDED.alt_names,
    official_sites = EXCLUDED.official_sites`

func (r *TeamRepository) UpsertBatch(ctx context.Context, teams []team.Team) error {
	if len(teams) == 0 {
		return nil
	}

	models := make([]teamInsertModel, 0, len(teams))
	for _, t := range teams {
		models = append(models, teamInsertModel{
			ID:              t.ID,
			Name:            t.Name,
			CleanName:       t.CleanName,
			EnglishName:     t.EnglishName,
			Country:         t.Country,
			Founded:         t.Founded,
			Image:           t.Image,
			Season:          t.Season,
			SeasonClean:     t.SeasonClean,
			URL:             t.URL,
			TablePosition:   t.TablePosition,
			PerformanceRank: t.PerformanceRank,
			Risk:            t.Risk,
			SeasonFormat:    t.SeasonFormat,
			CompetitionID:   t.CompetitionID,
			FullName:        t.FullName,
			AltNames:        pq.StringArray(t.AltNames),
			OfficialSites:   pq.StringArray(t.OfficialSites),
		})
	}

	query, args, err := qb.InsertModels("teams", models, teamUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert teams query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}

	return nil
}

func (r *TeamRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Select("1").From("teams").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build team exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check team exists id=%d: %w", id, err)
	}

	return true, nil
}

// ListCleanNamesDesc scans into pointers because clean_name is a
// nullable column; a team ingested without a name stores NULL there.
func (r *TeamRepository) ListCleanNamesDesc(ctx context.Context) ([]*string, error) {
	query, args, err := qb.Select("clean_name").From("teams").
		OrderBy("clean_name DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team clean names query: %w", err)
	}

	var names []*string
	if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
		return nil, fmt.Errorf("select team clean names: %w", err)
	}

	return names, nil
}

type teamInsertModel struct {
	ID              int64          `db:"id"`
	Name            *string        `db:"name"`
	CleanName       *string        `db:"clean_name"`
	EnglishName     *string        `db:"english_name"`
	Country         *string        `db:"country"`
	Founded         *string        `db:"founded"`
	Image           *string        `db:"image"`
	Season          *string        `db:"season"`
	SeasonClean     *string        `db:"season_clean"`
	URL             *string        `db:"url"`
	TablePosition   *int           `db:"table_position"`
	PerformanceRank *int           `db:"performance_rank"`
	Risk            *int           `db:"risk"`
	SeasonFormat    *string        `db:"season_format"`
	CompetitionID   *int64         `db:"competition_id"`
	FullName        *string        `db:"full_name"`
	AltNames        pq.StringArray `db:"alt_names"`
	OfficialSites   pq.StringArray `db:"official_sites"`
}
