package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/rakhafdl/goalstore/internal/usecase"
)

// Ingestion payloads are provider records forwarded as-is, so unknown
// fields are expected and tolerated by the decoders here.

func (h *Handler) IngestTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTeams")
	defer span.End()

	var req ingestTeamsRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamSyncService.SaveLeagueTeams(ctx, req.Teams); err != nil {
		h.logger.WarnContext(ctx, "ingest teams failed", "count", len(req.Teams), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"count":   len(req.Teams),
		"updated": true,
	})
}

// IngestMatches responds 200 even when a storage fault stopped the
// batch partway: the outcome of every record, including the fault, is
// reported in the result body.
func (h *Handler) IngestMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatches")
	defer span.End()

	var req ingestMatchesRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.matchSyncService.SaveMatches(ctx, req.Matches)
	if result.Err != nil {
		h.logger.WarnContext(ctx, "match ingestion stopped on storage fault",
			"processed", result.Processed(),
			"submitted", len(req.Matches),
			"error", result.Err,
		)
	}

	writeSuccess(ctx, w, http.StatusOK, batchResultToDTO(result))
}

func (h *Handler) IngestFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestFixtures")
	defer span.End()

	var req ingestFixturesRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.fixtureSyncService.SaveFixtures(ctx, req.Fixtures); err != nil {
		h.logger.WarnContext(ctx, "ingest fixtures failed", "count", len(req.Fixtures), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"count":   len(req.Fixtures),
		"updated": true,
	})
}

func (h *Handler) IngestPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestPredictions")
	defer span.End()

	var req ingestPredictionsRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.predictionSyncService.SavePredictions(ctx, req.Predictions); err != nil {
		h.logger.WarnContext(ctx, "ingest predictions failed", "count", len(req.Predictions), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"count":   len(req.Predictions),
		"updated": true,
	})
}
