// Package main runs the landing page server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"boco.agency/internal/app"
	"boco.agency/internal/config"
)

const shutdownTimeout = 10 * time.Second

var (
	addr       string
	contentURL string
	fetchMode  string
	debug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the boco landing page",
	Long: `Serve the boco landing page. Content is fetched from the CMS on every
page load. Configuration comes from the environment; flags override it.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	rootCmd.Flags().StringVar(&contentURL, "content-url", "", "CMS base URL (overrides CONTENT_URL)")
	rootCmd.Flags().StringVar(&fetchMode, "fetch-mode", "", "independent or gated (overrides FETCH_MODE)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging (overrides DEBUG)")
}

// loadConfig reads the environment and applies any flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.ServerAddr = addr
	}
	if flags.Changed("content-url") {
		cfg.ContentURL = contentURL
	}
	if flags.Changed("fetch-mode") {
		if err := cfg.FetchMode.UnmarshalText([]byte(fetchMode)); err != nil {
			return nil, err
		}
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = a.Close(closeCtx)
	}()

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           a.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server starting", zap.String("addr", cfg.ServerAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
