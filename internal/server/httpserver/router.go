package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/t1amat9409/roomstore-go/internal/core/service"
	"github.com/t1amat9409/roomstore-go/internal/server/config"
	"github.com/t1amat9409/roomstore-go/internal/server/httpserver/handler"
	"github.com/t1amat9409/roomstore-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Store handles all user and room operations.
	Store *service.Store

	// Logger for request logging.
	Logger *slog.Logger

	// Metrics is the registry backing /metrics. Optional; when nil the
	// endpoint is not registered and requests are not instrumented.
	Metrics *metric.Registry

	// RateLimit configures per-IP throttling.
	RateLimit config.RateLimitConfig

	// CORSAllowedOrigins is the list of allowed CORS origins.
	CORSAllowedOrigins []string
}

// NewRouter creates and configures the HTTP router with all routes and
// middleware. Order: Recover -> CORS -> RequestID -> RateLimit ->
// Metrics -> RequestLog -> Handler.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(cfg.Store, cfg.Logger)

	middlewares := []Middleware{
		Recover(cfg.Logger),
		CORS(cfg.CORSAllowedOrigins),
		RequestID(),
	}
	if cfg.RateLimit.Enabled {
		middlewares = append(middlewares, RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}
	middlewares = append(middlewares, RequestLog(cfg.Logger))

	mux := http.NewServeMux()

	if cfg.Metrics != nil {
		// Exposition format, outside the JSON envelope and rate limit.
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(),
			RequestID(), Recover(cfg.Logger)))
	}

	mux.Handle("/", Chain(h, middlewares...))

	return mux
}
