package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ngoserver/internal/adapter/repo"
	"ngoserver/internal/http/handlers"
	"ngoserver/internal/http/httpapi"
	"ngoserver/internal/infra"
	"ngoserver/internal/service"
	"ngoserver/internal/storage"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// All state is in memory and resets on restart.
	store := repo.NewStore(repo.DefaultSeed())

	assets, err := storage.NewFileStore(cfg.AssetsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare assets directory")
	}

	app := &handlers.App{
		NGOs:         store.NGOs,
		Projects:     store.Projects,
		Posts:        store.Posts,
		Donations:    service.NewDonations(store.Donations, store.Projects, logger),
		Volunteering: service.NewVolunteering(store.Opportunities, store.Applications, logger),
		Log:          logger,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		DefaultLocale:   cfg.DefaultLocale,
		RateLimitPerMin: cfg.RateLimitPerMin,
		Assets:          assets.Handler("/assets/"),
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
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
