package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modcon/internal/http/handlers"
	"modcon/internal/middleware"
)

// Options configures the middleware stack.
type Options struct {
	CORSOrigins     []string
	RateLimitPerMin int
	CountryLookup   middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.Recoverer,
		middleware.CORS(opts.CORSOrigins),
		middleware.Geo(opts.CountryLookup),
		middleware.Logger(app.Logger),
		middleware.Metrics,
	)

	r.Get("/v1/healthz", app.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))

		r.Post("/v1/chat", app.Chat)

		r.Route("/v1/specs", func(r chi.Router) {
			r.Get("/", app.ListSpecs)
			r.Post("/", app.CreateSpec)
			r.Get("/constraints", app.SpecConstraints)
			r.Get("/{id}", app.GetSpec)
		})

		r.Route("/v1/production", func(r chi.Router) {
			r.Post("/generate", app.GeneratePlan)
			r.Get("/batch/{id}", app.GetBatch)
			r.Patch("/asset/{id}/status", app.UpdateAssetStatus)
			r.Post("/builder/jobs", app.BuildJobs)
			r.Get("/plans/{id}", app.GetJobPlan)
			r.Patch("/plans/{id}/jobs/{jobID}/status", app.UpdateJobStatus)
		})

		r.Route("/v1/feed", func(r chi.Router) {
			r.Post("/generate", app.GenerateFeed)
			r.Post("/validate", app.ValidateFeed)
			r.Get("/constraints/{platform}", app.FeedConstraints)
		})

		r.Route("/v1/modules", func(r chi.Router) {
			r.Post("/export", app.ExportModules)
			r.Post("/export/bundle", app.ExportBundle)
			r.Get("/platforms", app.ListPlatforms)
			r.Get("/decisioning/operators", app.DecisioningOperators)
			r.Post("/decisioning/validate", app.ValidateDecisioning)
			r.Get("/workflows", app.Workflows)
			r.Get("/library", app.ModuleLibrary)
			r.Post("/create", app.CreateModule)
			r.Get("/funnel-stages", app.FunnelStages)
			r.Get("/tickets/statuses", app.TicketStatuses)
		})
	})

	return r
}
