package handler

import (
	"log/slog"
	"net/http"

	"github.com/segyhp/easy-service/pkg/response"

	"github.com/gorilla/mux"
)

func NewRouter(
	negotiationHandler *NegotiationHandler,
	exceptionHandler *ExceptionProposalHandler,
	healthHandler *HealthHandler,
	logger *slog.Logger,
) http.Handler {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware(logger))

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/products", negotiationHandler.Products).Methods("GET")
	api.HandleFunc("/proposals/preview", negotiationHandler.PreviewProposals).Methods("POST")
	api.HandleFunc("/proposals/refusal", negotiationHandler.RefusalText).Methods("POST")
	api.HandleFunc("/proposals/refusal-reasons", negotiationHandler.RefusalReasons).Methods("GET")

	api.HandleFunc("/agreements", negotiationHandler.CreateAgreement).Methods("POST")
	api.HandleFunc("/agreements", negotiationHandler.ListAgreements).Methods("GET")
	api.HandleFunc("/agreements/statistics", negotiationHandler.GetStatistics).Methods("GET")
	api.HandleFunc("/agreements/export", negotiationHandler.ExportAgreements).Methods("GET")
	api.HandleFunc("/agreements/{id:[0-9]+}/paid", negotiationHandler.MarkPaid).Methods("POST")
	api.HandleFunc("/agreements/{id:[0-9]+}/promise", negotiationHandler.MarkPromised).Methods("POST")
	api.HandleFunc("/agreements/{id:[0-9]+}", negotiationHandler.DeleteAgreement).Methods("DELETE")

	api.HandleFunc("/exception-proposals", exceptionHandler.Create).Methods("POST")
	api.HandleFunc("/exception-proposals", exceptionHandler.List).Methods("GET")
	api.HandleFunc("/exception-proposals/{id:[0-9]+}", exceptionHandler.Edit).Methods("PUT")
	api.HandleFunc("/exception-proposals/{id:[0-9]+}", exceptionHandler.Delete).Methods("DELETE")

	// CORS answers preflight requests before routing
	return response.CORSMiddleware(router)
}
