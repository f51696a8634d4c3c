package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"ngoserver/internal/http/handlers"
	"ngoserver/internal/metrics"
	"ngoserver/internal/middleware"
)

// Options configures the cross-cutting middleware.
type Options struct {
	AllowedOrigins  []string
	DefaultLocale   string
	RateLimitPerMin int
	// Assets serves /assets/*; nil leaves the path unrouted.
	Assets http.Handler
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(app.Log),
		chimw.Recoverer,
		metrics.InstrumentHandler,
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale),
	)

	r.Get("/", app.Home)
	r.Get("/healthz", app.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	if opts.Assets != nil {
		r.Method(http.MethodGet, "/assets/*", opts.Assets)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/ngos", app.NGOsList)
		r.Get("/posts", app.PostsList)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", app.ProjectsList)
			r.Get("/{id}", app.ProjectsGet)
		})

		r.Route("/opportunities", func(r chi.Router) {
			r.Get("/", app.OpportunitiesList)
			r.With(middleware.RateLimit(opts.RateLimitPerMin, time.Minute)).
				Post("/{id}/apply", app.OpportunitiesApply)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", app.DonationsList)
			r.With(middleware.RateLimit(opts.RateLimitPerMin, time.Minute)).
				Post("/checkout", app.DonationsCheckout)
		})
	})

	return r
}
