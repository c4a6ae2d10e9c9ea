package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/furk4ng99/fenerbahce-squad-builder/catalog"
	"github.com/furk4ng99/fenerbahce-squad-builder/config"
	"github.com/furk4ng99/fenerbahce-squad-builder/db"
	"github.com/furk4ng99/fenerbahce-squad-builder/duel"
	"github.com/furk4ng99/fenerbahce-squad-builder/handlers"
	"github.com/furk4ng99/fenerbahce-squad-builder/repositories"
	api "github.com/furk4ng99/fenerbahce-squad-builder/routes"
	"github.com/furk4ng99/fenerbahce-squad-builder/services"
	"github.com/furk4ng99/fenerbahce-squad-builder/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Catalog load, the stats database and the uploader are independent;
	// bring them up concurrently.
	var (
		playerCatalog *catalog.Catalog
		statsDB       *sql.DB
		uploader      storage.FileUploader
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		playerCatalog, err = catalog.Load(cfg.PlayersCSVPath, catalog.NormalizeOptions{
			Rating: catalog.RatingStrategy(cfg.RatingStrategy),
		})
		if err != nil {
			return fmt.Errorf("failed to load player catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if cfg.StatsDatabaseURL == "" {
			return nil
		}
		var err error
		statsDB, err = db.Connect(cfg.StatsDatabaseURL, 5*time.Second)
		if err != nil {
			return fmt.Errorf("failed to connect to stats database: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if !cfg.PortraitUploadsEnabled() {
			return nil
		}
		var err error
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("player catalog loaded",
		slog.Int("players", playerCatalog.Len()),
		slog.String("source", cfg.PlayersCSVPath))

	if statsDB != nil {
		defer func() {
			if err := statsDB.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()
		logger.Info("stats database connection established")
	}
	if uploader != nil {
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("portrait uploads disabled; R2 not configured")
	}

	var statsRepo repositories.StatsRepository
	if statsDB != nil {
		statsRepo = repositories.NewPostgresStatsRepository(statsDB, logger)
	} else {
		statsRepo = repositories.NewFileStatsRepository(cfg.StatsFilePath, logger)
		logger.Info("using file-backed stats store", slog.String("path", cfg.StatsFilePath))
	}

	wsHub := duel.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	newRnd := func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	playerService := services.NewPlayerService(playerCatalog, uploader, logger)
	duelService := services.NewDuelService(duel.Roster, statsRepo, wsHub, logger, newRnd(), nil)
	tournamentService := services.NewTournamentService(duel.Roster, wsHub, logger, newRnd)
	squadService := services.NewSquadService(playerCatalog)
	logger.Info("Services initialized")

	playerHandler := handlers.NewPlayerHandler(playerService, cfg.DefaultClub)
	duelHandler := handlers.NewDuelHandler(duelService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	squadHandler := handlers.NewSquadHandler(squadService)
	webSocketHandler := handlers.NewWebsocketHandler(wsHub, tournamentService)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		playerHandler,
		duelHandler,
		tournamentHandler,
		squadHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
