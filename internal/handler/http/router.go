package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(workLogHandler WorkLogHandler, settlementHandler SettlementHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklog-settlement"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Legacy paths kept for the existing consumers
		r.Post("/generate-remittances-for-all-users", settlementHandler.GenerateRemittances)
		r.Get("/list-all-worklogs", workLogHandler.List)

		r.Route("/worklogs", func(r chi.Router) {
			r.Post("/", workLogHandler.Create)
			r.Get("/", workLogHandler.List)
			r.Post("/{id}/time-segments", workLogHandler.LogTimeSegment)
			r.Post("/{id}/adjustments", workLogHandler.RecordAdjustment)
		})

		r.Delete("/time-segments/{id}", workLogHandler.DeleteTimeSegment)

		r.Route("/settlements", func(r chi.Router) {
			r.Get("/", settlementHandler.ListSettlements)
			r.Get("/{id}", settlementHandler.GetSettlement)
		})

		r.Route("/remittances", func(r chi.Router) {
			r.Post("/{id}/mark-paid", settlementHandler.MarkRemittancePaid)
			r.Post("/{id}/mark-failed", settlementHandler.MarkRemittanceFailed)
		})
	})

	return r
}
