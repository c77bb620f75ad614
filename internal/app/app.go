// Package app assembles the server: configuration, database pool,
// repositories, services, the GraphQL schema and the HTTP stack.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/linkshelf-backend/internal/adapter/postgres"
	linkrepo "github.com/heartmarshall/linkshelf-backend/internal/adapter/postgres/link"
	"github.com/heartmarshall/linkshelf-backend/internal/auth"
	"github.com/heartmarshall/linkshelf-backend/internal/config"
	linksvc "github.com/heartmarshall/linkshelf-backend/internal/service/link"
	gql "github.com/heartmarshall/linkshelf-backend/internal/transport/graphql"
	"github.com/heartmarshall/linkshelf-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/linkshelf-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/linkshelf-backend/internal/transport/middleware"
	"github.com/heartmarshall/linkshelf-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run starts the server and blocks until ctx is cancelled or the listener
// fails. In-flight requests get cfg.Server.ShutdownTimeout to finish.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	links := linkrepo.New(pool, linkrepo.WithDefaultLimit(cfg.Links.DefaultPageSize))
	linkService := linksvc.NewService(logger, links, postgres.NewTxManager(pool), cfg.Links.MaxPageSize)

	schema, err := gql.NewSchema(resolver.NewResolver(logger, linkService), gql.NewErrorPresenter(logger))
	if err != nil {
		return fmt.Errorf("build graphql schema: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerMinute, rateLimitCleanupInterval)
	defer limiter.Stop()

	router := newRouter(routerDeps{
		log:     logger,
		graphql: gql.NewHandler(schema, cfg.GraphQL),
		health:  rest.NewHealthHandler(logger, BuildVersion(), rest.Component{Name: "database", Pinger: pool}),
		loaders: &dataloader.Repos{LinkUsers: links},
		tokens:  auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cors:    cfg.CORS,
		limiter: limiter,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
