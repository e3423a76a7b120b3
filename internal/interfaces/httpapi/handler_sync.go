package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/rakhafdl/goalstore/internal/usecase"
)

// RunSync triggers a provider pull. The target selects the pipeline:
// "season" pulls teams and matches for a season id, "fixtures" pulls a
// league's fixture list, "predictions" fills in forecasts for fixtures
// that have none yet.
func (h *Handler) RunSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSync")
	defer span.End()

	var req runSyncRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	switch req.Target {
	case "season":
		if req.SeasonID <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: season_id is required for target=season", usecase.ErrInvalidInput))
			return
		}
		result, err := h.dataSyncService.SyncSeason(ctx, req.SeasonID)
		if err != nil {
			h.logger.WarnContext(ctx, "season sync failed", "season_id", req.SeasonID, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, map[string]any{
			"target":    "season",
			"season_id": req.SeasonID,
			"matches":   batchResultToDTO(result),
		})
	case "fixtures":
		if req.LeagueID <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: league_id is required for target=fixtures", usecase.ErrInvalidInput))
			return
		}
		count, err := h.dataSyncService.SyncFixtures(ctx, req.LeagueID, req.Season)
		if err != nil {
			h.logger.WarnContext(ctx, "fixture sync failed", "league_id", req.LeagueID, "season", req.Season, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, map[string]any{
			"target":    "fixtures",
			"league_id": req.LeagueID,
			"season":    req.Season,
			"count":     count,
		})
	case "predictions":
		count, err := h.dataSyncService.SyncPredictions(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "prediction sync failed", "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, map[string]any{
			"target": "predictions",
			"count":  count,
		})
	default:
		writeError(ctx, w, fmt.Errorf("%w: unknown sync target %q", usecase.ErrInvalidInput, req.Target))
	}
}
