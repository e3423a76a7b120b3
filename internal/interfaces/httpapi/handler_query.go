package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rakhafdl/goalstore/internal/domain/match"
	"github.com/rakhafdl/goalstore/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	filter, err := matchFilterFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchQueryService.ListMatches(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListUnpredictedFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUnpredictedFixtures")
	defer span.End()

	ids, err := h.fixtureQueryService.ListFixtureIDsWithoutPredictions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list unpredicted fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"fixture_ids": ids,
		"count":       len(ids),
	})
}

func (h *Handler) ListDisplayMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDisplayMatches")
	defer span.End()

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	league := strings.TrimSpace(r.URL.Query().Get("league"))

	rows, err := h.displayService.ListMatchesForJSON(ctx, date, league)
	if err != nil {
		h.logger.WarnContext(ctx, "list display matches failed", "date", date, "league", league, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func matchFilterFromQuery(r *http.Request) (match.Filter, error) {
	query := r.URL.Query()

	var filter match.Filter
	if v := strings.TrimSpace(query.Get("season")); v != "" {
		filter.Season = &v
	}
	if v := strings.TrimSpace(query.Get("status")); v != "" {
		filter.Status = &v
	}

	var err error
	if filter.CompetitionID, err = optionalInt64Param(query.Get("competition_id"), "competition_id"); err != nil {
		return match.Filter{}, err
	}
	if filter.HomeTeamID, err = optionalInt64Param(query.Get("home_team_id"), "home_team_id"); err != nil {
		return match.Filter{}, err
	}
	if filter.AwayTeamID, err = optionalInt64Param(query.Get("away_team_id"), "away_team_id"); err != nil {
		return match.Filter{}, err
	}
	if filter.DateUnixFrom, err = optionalInt64Param(query.Get("date_unix_from"), "date_unix_from"); err != nil {
		return match.Filter{}, err
	}
	if filter.DateUnixTo, err = optionalInt64Param(query.Get("date_unix_to"), "date_unix_to"); err != nil {
		return match.Filter{}, err
	}

	return filter, nil
}

func optionalInt64Param(raw, name string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return &value, nil
}
