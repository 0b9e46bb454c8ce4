// main.go
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ftirdash/internal/config"
	"ftirdash/internal/observability"
	"ftirdash/internal/plot"
	"ftirdash/internal/results"
	"ftirdash/internal/spectra"
)

type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *observability.Collector
	sessions *results.Registry
	detector *spectra.Detector
}

func newApp(cfg *config.Config, logger *zap.Logger, metrics *observability.Collector) *app {
	return &app{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		sessions: results.NewRegistry(cfg.MaxRows, cfg.SessionTTL),
		detector: spectra.NewDetector(),
	}
}

func (a *app) plotOptions() plot.Options {
	return plot.Options{
		Width:    a.cfg.Plot.Width,
		Height:   a.cfg.Plot.Height,
		DotWidth: a.cfg.Plot.DotWidth,
	}
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(observability.Logger(a.logger))
	r.Use(observability.Instrument(a.metrics))

	r.Get("/", a.dashboardHandler)
	r.Post("/upload", a.uploadHandler)
	r.Post("/reset", a.resetHandler)
	r.Post("/calculate", a.calculateHandler)

	r.Route("/export", func(r chi.Router) {
		r.Get("/filtered_results.csv", a.exportCSVHandler)
		r.Get("/filtered_results.xlsx", a.exportXLSXHandler)
		r.Get("/summary.md", a.summaryHandler)
	})

	r.Route("/plots", func(r chi.Router) {
		r.Get("/file", a.filePlotHandler)
		r.Get("/combined", a.combinedPlotHandler)
	})
	r.Get("/trends/year", a.trendHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
		r.Get("/health", a.healthHandler)
		r.Get("/results", a.resultsAPIHandler)
		r.Post("/validate", a.validateFileHandler)
	})

	r.Handle("/metrics", a.metrics.Handler())
	return r
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "ftirdash",
		Short: "Researcher profile page with FTIR result plots",
		Long: `ftirdash serves a researcher profile page. Visitors upload CSV or
Excel result files, filter the combined rows by keyword, export them, and
view FTIR spectra plotted per file and combined.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.ListenAddress = addr
			}
			if verbose {
				cfg.Verbose = true
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&addr, "addr", config.DefaultListenAddress, "address to listen on")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	a := newApp(cfg, logger, observability.NewCollector(config.AppName))
	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SessionTTL > 0 {
		go a.sweepSessions(ctx, sweepInterval(cfg.SessionTTL))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("address", cfg.ListenAddress), zap.String("researcher", cfg.Profile.Name))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// sweepInterval checks for idle sessions four times per TTL, but never more
// often than every ten seconds.
func sweepInterval(ttl time.Duration) time.Duration {
	return max(ttl/4, 10*time.Second)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "ftirdash:", err)
		os.Exit(1)
	}
}
