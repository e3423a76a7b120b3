package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/fixtures/unpredicted", handler.ListUnpredictedFixtures)
	mux.HandleFunc("GET /v1/display/matches", handler.ListDisplayMatches)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/ingestion/teams", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestTeams)))
	mux.Handle("POST /v1/internal/ingestion/matches", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestMatches)))
	mux.Handle("POST /v1/internal/ingestion/fixtures", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestFixtures)))
	mux.Handle("POST /v1/internal/ingestion/predictions", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestPredictions)))
	mux.Handle("POST /v1/internal/sync/run", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSync)))
}
