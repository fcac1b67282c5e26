package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordsnap-backend/internal/adapter/blobstore"
	"github.com/heartmarshall/wordsnap-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordsnap-backend/internal/adapter/postgres/savedset"
	"github.com/heartmarshall/wordsnap-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/wordsnap-backend/internal/config"
	"github.com/heartmarshall/wordsnap-backend/internal/service/library"
	"github.com/heartmarshall/wordsnap-backend/internal/service/ocr"
	"github.com/heartmarshall/wordsnap-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordsnap-backend/internal/transport/rest"
	"github.com/heartmarshall/wordsnap-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects the
// database and the optional scan archive, builds the services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	info := BuildInfo()

	logger.Info("starting application",
		slog.String("version", info.String()),
		slog.String("go", info.GoVersion),
		slog.String("log_level", cfg.Log.Level),
	)

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// 2. Scan archive.
	var (
		ocrOpts    []ocr.Option
		healthOpts []rest.HealthOption
	)
	if cfg.Storage.Enabled() {
		archive, err := blobstore.New(cfg.Storage, logger)
		if err != nil {
			return fmt.Errorf("scan archive: %w", err)
		}
		if err := archive.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("scan archive: %w", err)
		}
		ocrOpts = append(ocrOpts, ocr.WithArchive(archive))
		healthOpts = append(healthOpts, rest.WithComponent("storage", archive))
		logger.Info("scan archive enabled", slog.String("bucket", cfg.Storage.Bucket))
	}

	// 3. Services.
	extractor := anthropic.NewClient(cfg.LLM, logger)
	ocrService := ocr.NewService(logger, cfg.OCR, extractor, ocrOpts...)
	libraryService := library.NewService(logger, cfg.Library, savedset.New(pool), postgres.NewTxManager(pool))

	// 4. HTTP.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(logger, cfg, Handlers{
		OCR:     rest.NewOCRHandler(ocrService, logger, ocrBodyLimit(cfg.OCR)),
		Library: rest.NewLibraryHandler(libraryService, logger, cfg.Library.MaxImportBytes),
		Health:  rest.NewHealthHandler(pool, info.String(), healthOpts...),
	}, limiter)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
