package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"brandstudio/internal/adapter/repo"
	"brandstudio/internal/artgen"
	"brandstudio/internal/backup"
	"brandstudio/internal/http/handlers"
	httpapi "brandstudio/internal/http/httpapi"
	"brandstudio/internal/infra"
	"brandstudio/internal/infra/credentials"
	"brandstudio/internal/infra/geoip"
	"brandstudio/internal/middleware"
	"brandstudio/internal/providers/genai"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	store := repo.NewStore(runner)

	// Startup probe: bootstrap tables and verify the store is reachable.
	probeCtx, cancelProbe := context.WithTimeout(ctx, 10*time.Second)
	if err := store.EnsureSchema(probeCtx); err != nil {
		logger.Fatal().Err(err).Msg("store unreachable")
	}
	cancelProbe()

	keys := credentials.NewStore(runner)

	// Env key wins; the stored key is the fallback.
	apiKey := cfg.GeminiAPIKey
	if apiKey == "" {
		keyCtx, cancelKey := context.WithTimeout(ctx, 5*time.Second)
		stored, err := keys.GeminiAPIKey(keyCtx)
		cancelKey()
		if err != nil {
			logger.Warn().Err(err).Msg("could not load stored gemini key")
		} else {
			apiKey = stored
		}
	}
	if apiKey == "" {
		logger.Warn().Msg("no gemini key configured; generation endpoints will fail")
	}

	client := genai.NewClient(genai.Options{
		APIKey:      apiKey,
		BaseURL:     cfg.GeminiBaseURL,
		ImageModel:  cfg.GeminiImageModel,
		TextModel:   cfg.GeminiTextModel,
		VisionModel: cfg.GeminiVisionModel,
		Logger:      &logger,
	})
	generator := artgen.NewService(client, artgen.Options{
		MaxAttempts:  cfg.RetryMaxAttempts,
		InitialDelay: cfg.RetryInitialDelay,
		Logger:       &logger,
	})

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
	}

	app := &handlers.App{
		Brands:    store.Brands,
		Arts:      store.Arts,
		Generator: generator,
		Backup:    backup.NewService(store.Brands, store.Arts, backup.Options{Logger: &logger}),
		Keys:      keys,
		EnvKeySet: cfg.GeminiAPIKey != "",
		Logger:    logger,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		DefaultLocale:  cfg.DefaultLocale,
		CountryLookup:  lookup,
		RateLimit:      cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
