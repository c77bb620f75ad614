package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/linkshelf-backend/internal/auth"
	"github.com/heartmarshall/linkshelf-backend/internal/config"
	"github.com/heartmarshall/linkshelf-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/linkshelf-backend/internal/transport/middleware"
	"github.com/heartmarshall/linkshelf-backend/internal/transport/rest"
)

type routerDeps struct {
	log     *slog.Logger
	graphql http.Handler
	health  *rest.HealthHandler
	loaders *dataloader.Repos
	tokens  *auth.JWTManager
	cors    config.CORSConfig
	limiter *middleware.RateLimiter
}

// newRouter mounts the GraphQL endpoint and the probes. Only /query
// authenticates and gets per-request loaders; every route shares request ids,
// access logging, panic recovery, CORS and rate limiting.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/query", middleware.Chain(
		middleware.Auth(d.tokens, d.log),
		middleware.TrackUser,
		dataloader.Middleware(d.loaders),
	)(d.graphql))

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.log),
		middleware.Recovery(d.log),
		middleware.CORS(d.cors),
		d.limiter.Middleware,
	)(mux)
}
