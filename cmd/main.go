package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"

	"github.com/facultymetrics/facultyrank/internal/adapters/http/api"
	"github.com/facultymetrics/facultyrank/internal/adapters/repository"
	app "github.com/facultymetrics/facultyrank/internal/app"
	"github.com/facultymetrics/facultyrank/internal/config"
	"github.com/facultymetrics/facultyrank/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, err := repository.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		os.Stderr.WriteString("failed to open record store: " + err.Error() + "\n")
		return
	}
	if err := store.Migrate(ctx); err != nil {
		os.Stderr.WriteString("failed to migrate record store: " + err.Error() + "\n")
		return
	}

	locale := language.Und
	if cfg.RankingLocale != "" {
		parsed, err := language.Parse(cfg.RankingLocale)
		if err != nil {
			log.Warn(ctx, "invalid ranking_locale; falling back to root collation",
				logger.String("ranking_locale", cfg.RankingLocale), logger.Error(err))
		} else {
			locale = parsed
		}
	}

	svc := app.New(store,
		app.WithLogger(log),
		app.WithBatchConcurrency(cfg.BatchConcurrency),
		app.WithSnapshotTTL(time.Duration(cfg.CacheTTLMS)*time.Millisecond),
		app.WithMinSimilarityPercent(cfg.MinSimilarityPercent),
		app.WithSimilarityTopK(cfg.SimilarityTopK),
		app.WithRankingLocale(locale),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc, cfg.MaxLeaderboardLimit)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
