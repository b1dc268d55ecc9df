// Package app wires configuration into the content client and services.
package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"boco.agency/internal/config"
	"boco.agency/internal/content"
	"boco.agency/internal/handlers"
	"boco.agency/internal/services"
	"boco.agency/internal/telemetry"
)

// App holds the long-lived pieces shared by the server and the static export
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *telemetry.Metrics
	Pages    *services.PageService
	Projects *services.ProjectService

	shutdownTracing func(context.Context) error
}

// New builds the application from a validated config
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := telemetry.NewLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	shutdown, err := telemetry.SetupTracing(ctx, cfg.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}

	metrics := telemetry.NewMetrics()

	client, err := content.NewClient(cfg.ContentURL, content.WithObserver(metrics))
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("create content client: %w", err)
	}

	assets, err := services.NewAssetResolver(cfg.ContentURL)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("create asset resolver: %w", err)
	}

	pages := services.NewPageService(client, assets,
		services.WithFetchMode(cfg.FetchMode),
		services.WithTimeout(cfg.ContentTimeout),
		services.WithLogger(logger.Named("page")),
		services.WithLoadObserver(metrics))

	logger.Info("content source configured",
		zap.String("content_url", client.BaseURL()),
		zap.String("fetch_mode", string(cfg.FetchMode)),
		zap.Duration("timeout", cfg.ContentTimeout))

	return &App{
		Config:          cfg,
		Logger:          logger,
		Metrics:         metrics,
		Pages:           pages,
		Projects:        services.NewProjectService(client, assets),
		shutdownTracing: shutdown,
	}, nil
}

// Routes returns the HTTP handler for the server
func (a *App) Routes() http.Handler {
	return handlers.SetupRoutes(handlers.Deps{
		Pages:    a.Pages,
		Projects: a.Projects,
		Logger:   a.Logger,
		Metrics:  a.Metrics,
	})
}

// Close flushes traces and logs
func (a *App) Close(ctx context.Context) error {
	err := a.shutdownTracing(ctx)
	_ = a.Logger.Sync()
	return err
}
