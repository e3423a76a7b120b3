package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rakhafdl/goalstore/internal/domain/match"
	qb "github.com/rakhafdl/goalstore/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Select("1").From("matches").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build match exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check match exists id=%d: %w", id, err)
	}

	return true, nil
}

// CreateWithDetails writes the match row plus its optional stats and
// odds rows in one transaction so a partial match never becomes
// visible.
func (r *MatchRepository) CreateWithDetails(ctx context.Context, m match.Match, stats *match.Stats, odds *match.Odds) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create match: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	matchModel := matchInsertModel{
		ID:            m.ID,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		Season:        m.Season,
		Status:        m.Status,
		DateUnix:      m.DateUnix,
		CompetitionID: m.CompetitionID,
		StadiumName:   m.StadiumName,
		Attendance:    m.Attendance,
		RefereeID:     m.RefereeID,
	}
	query, args, err := qb.InsertModel("matches", matchModel, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match id=%d: %w", m.ID, err)
	}

	if stats != nil {
		statsModel := matchStatsInsertModel{
			MatchID:           m.ID,
			HomeGoals:         stats.HomeGoals,
			AwayGoals:         stats.AwayGoals,
			HomeCorners:       stats.HomeCorners,
			AwayCorners:       stats.AwayCorners,
			HomeShotsOnTarget: stats.HomeShotsOnTarget,
			AwayShotsOnTarget: stats.AwayShotsOnTarget,
			HomePossession:    stats.HomePossession,
			AwayPossession:    stats.AwayPossession,
			HomeXG:            stats.HomeXG,
			AwayXG:            stats.AwayXG,
		}
		query, args, err := qb.InsertModel("match_stats", statsModel, "")
		if err != nil {
			return fmt.Errorf("build insert match stats query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match stats match_id=%d: %w", m.ID, err)
		}
	}

	if odds != nil {
		oddsModel := matchOddsInsertModel{
			MatchID: m.ID,
			FTHome:  odds.FTHome,
			FTDraw:  odds.FTDraw,
			FTAway:  odds.FTAway,
			BTTSYes: odds.BTTSYes,
			BTTSNo:  odds.BTTSNo,
			Over25:  odds.Over25,
			Under25: odds.Under25,
		}
		query, args, err := qb.InsertModel("match_odds", oddsModel, "")
		if err != nil {
			return fmt.Errorf("build insert match odds query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match odds match_id=%d: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create match tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) ListByFilter(ctx context.Context, filter match.Filter) ([]match.WithDetails, error) {
	conditions := make([]qb.Condition, 0, 7)
	if filter.Season != nil {
		conditions = append(conditions, qb.Eq("season", *filter.Season))
	}
	if filter.Status != nil {
		conditions = append(conditions, qb.Eq("status", *filter.Status))
	}
	if filter.CompetitionID != nil {
		conditions = append(conditions, qb.Eq("competition_id", *filter.CompetitionID))
	}
	if filter.HomeTeamID != nil {
		conditions = append(conditions, qb.Eq("home_team_id", *filter.HomeTeamID))
	}
	if filter.AwayTeamID != nil {
		conditions = append(conditions, qb.Eq("away_team_id", *filter.AwayTeamID))
	}
	if filter.DateUnixFrom != nil {
		conditions = append(conditions, qb.Expr("date_unix >= ?", *filter.DateUnixFrom))
	}
	if filter.DateUnixTo != nil {
		conditions = append(conditions, qb.Expr("date_unix <= ?", *filter.DateUnixTo))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}
	if len(rows) == 0 {
		return []match.WithDetails{}, nil
	}

	ids := make([]any, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	statsByMatch, err := r.statsByMatchIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	oddsByMatch, err := r.oddsByMatchIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]match.WithDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.WithDetails{
			Match: match.Match{
				ID:            row.ID,
				HomeTeamID:    row.HomeTeamID,
				AwayTeamID:    row.AwayTeamID,
				Season:        row.Season,
				Status:        row.Status,
				DateUnix:      row.DateUnix,
				CompetitionID: row.CompetitionID,
				StadiumName:   row.StadiumName,
				Attendance:    row.Attendance,
				RefereeID:     row.RefereeID,
			},
			Stats: statsByMatch[row.ID],
			Odds:  oddsByMatch[row.ID],
		})
	}

	return out, nil
}

func (r *MatchRepository) statsByMatchIDs(ctx context.Context, ids []any) (map[int64]*match.Stats, error) {
	query, args, err := qb.Select("*").From("match_stats").
		Where(qb.In("match_id", ids)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match stats query: %w", err)
	}

	var rows []matchStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match stats: %w", err)
	}

	out := make(map[int64]*match.Stats, len(rows))
	for _, row := range rows {
		out[row.MatchID] = &match.Stats{
			MatchID:           row.MatchID,
			HomeGoals:         row.HomeGoals,
			AwayGoals:         row.AwayGoals,
			HomeCorners:       row.HomeCorners,
			AwayCorners:       row.AwayCorners,
			HomeShotsOnTarget: row.HomeShotsOnTarget,
			AwayShotsOnTarget: row.AwayShotsOnTarget,
			HomePossession:    row.HomePossession,
			AwayPossession:    row.AwayPossession,
			HomeXG:            row.HomeXG,
			AwayXG:            row.AwayXG,
		}
	}
	return out, nil
}

func (r *MatchRepository) oddsByMatchIDs(ctx context.Context, ids []any) (map[int64]*match.Odds, error) {
	query, args, err := qb.Select("*").From("match_odds").
		Where(qb.In("match_id", ids)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match odds query: %w", err)
	}

	var rows []matchOddsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match odds: %w", err)
	}

	out := make(map[int64]*match.Odds, len(rows))
	for _, row := range rows {
		out[row.MatchID] = &match.Odds{
			MatchID: row.MatchID,
			FTHome:  row.FTHome,
			FTDraw:  row.FTDraw,
			FTAway:  row.FTAway,
			BTTSYes: row.BTTSYes,
			BTTSNo:  row.BTTSNo,
			Over25:  row.Over25,
			Under25: row.Under25,
		}
	}
	return out, nil
}
