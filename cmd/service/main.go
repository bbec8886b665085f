package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/giannis84/subway-favorites/internal"
	"github.com/giannis84/subway-favorites/internal/auth"
	"github.com/giannis84/subway-favorites/internal/config"
	"github.com/giannis84/subway-favorites/internal/database"
	"github.com/giannis84/subway-favorites/internal/github"
	"github.com/giannis84/subway-favorites/internal/github/githubtest"
	"github.com/giannis84/subway-favorites/internal/handlers"
	"github.com/giannis84/subway-favorites/internal/logging"
	"github.com/giannis84/subway-favorites/internal/routes"
	"github.com/giannis84/subway-favorites/internal/subway"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", slog.String(logging.ErrorKey, err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	logger.Info("configuration loaded",
		slog.String("api_addr", cfg.APIAddr()),
		slog.String("health_addr", cfg.HealthAddr()),
		slog.String("db_driver", cfg.DBDriver),
	)

	db, err := database.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return fmt.Errorf("initialising database: %w", err)
	}
	defer db.Close()

	repo := database.NewSQLRepository(db, cfg.DBDriver)
	if cfg.SampleNetwork {
		if err := repo.LoadSampleNetwork(context.Background()); err != nil {
			return fmt.Errorf("loading sample network: %w", err)
		}
		logger.Info("sample network loaded")
	}
	logger.Info("database ready")

	authCfg := cfg.AuthConfig()
	favorites := handlers.NewFavorites(repo, subway.NewPathFinder(repo))
	login := handlers.NewLogin(
		github.NewClient(github.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			BaseURL:      cfg.GitHubBaseURL,
			APIURL:       cfg.GitHubAPIURL,
		}),
		repo,
		auth.NewIssuer(authCfg),
	)

	healthService := internal.NewService(internal.ServiceConfig{
		Name:   "health check api",
		Addr:   cfg.HealthAddr(),
		Logger: logger,
		Routes: routes.RegisterHealthRoutes(db),
	})
	apiService := internal.NewService(internal.ServiceConfig{
		Name:         "favorites api",
		Addr:         cfg.APIAddr(),
		Logger:       logger,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		Routes: func(r chi.Router) {
			r.Group(routes.RegisterFavoritesRoutes(favorites, authCfg, cfg.RateLimitConfig()))
			r.Group(routes.RegisterLoginRoutes(login))
			if cfg.GitHubMockEnabled {
				logger.Warn("mock github provider mounted at /github")
				r.Route("/github", githubtest.NewProvider(githubtest.DefaultFixtures()).Routes())
			}
		},
	})

	errCh := make(chan error, 2)
	for _, svc := range []*internal.Service{healthService, apiService} {
		go func() {
			if err := svc.ListenAndServe(); err != nil {
				errCh <- fmt.Errorf("%s: %w", svc.Name, err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Error("API service shutdown error", slog.String(logging.ErrorKey, err.Error()))
	}
	if err := healthService.Shutdown(shutdownCtx); err != nil {
		logger.Error("health service shutdown error", slog.String(logging.ErrorKey, err.Error()))
	}
	logger.Info("exiting...")
	return serveErr
}
