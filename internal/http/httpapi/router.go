package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"brandstudio/internal/http/handlers"
	"brandstudio/internal/middleware"
)

// Options carries the cross-cutting router knobs.
type Options struct {
	AllowedOrigins []string
	DefaultLocale  string
	CountryLookup  middleware.CountryLookup
	RateLimit      int // generate/scan requests per client per minute
}

func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	r.Use(middleware.I18N(opts.DefaultLocale, opts.CountryLookup))

	perMinute := opts.RateLimit
	if perMinute <= 0 {
		perMinute = 30
	}
	limit := middleware.RateLimit(perMinute, time.Minute)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/brand", func(r chi.Router) {
		r.Get("/", app.BrandGet)
		r.Put("/", app.BrandSave)
		r.Post("/styles", app.StyleCreate)
	})

	r.With(limit).Post("/v1/dna/scan", app.DNAScan)

	r.Route("/v1/art", func(r chi.Router) {
		r.With(limit).Post("/generate", app.ArtGenerate)
		r.Get("/", app.ArtList)
		r.Post("/", app.ArtSave)
		r.Delete("/{id}", app.ArtDelete)
		r.Delete("/", app.ArtClear)
	})

	r.Get("/v1/backup", app.BackupExport)
	r.Post("/v1/backup", app.BackupImport)
	r.Delete("/v1/data", app.DataReset)

	r.Route("/v1/integrations/gemini", func(r chi.Router) {
		r.Get("/status", app.GeminiStatus)
		r.Put("/", app.GeminiKeySet)
	})

	return r
}
