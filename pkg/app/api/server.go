// Package api implements app.Runner for the airdrop registration server.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
	airdropservice "github.com/chainsafe/airdrop-registry/pkg/airdrop/service"
	"github.com/chainsafe/airdrop-registry/pkg/airdropstore"
	apperrors "github.com/chainsafe/airdrop-registry/pkg/app/errors"
	apphttp "github.com/chainsafe/airdrop-registry/pkg/app/http"
	"github.com/chainsafe/airdrop-registry/pkg/auth"
	"github.com/chainsafe/airdrop-registry/pkg/config"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting airdrop registration server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
	)

	store, err := airdropstore.Open(&cfg.Storage, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	verifier := auth.NewVerifier(cfg.Signatures, logger)
	svc := airdropservice.NewService(store, verifier, logger, cfg.Signatures)

	var admin auth.TokenValidator
	if cfg.Admin.JWKSURL != "" {
		admin = auth.NewJWTValidator(cfg.Admin.JWKSURL, cfg.Admin.Issuer)
		logger.Info("Admin endpoints enabled", zap.String("jwks_url", cfg.Admin.JWKSURL))
	}

	router := NewRouter(cfg, airdropservice.NewLog(svc, logger), admin, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// NewRouter builds the HTTP handler tree. Admin routes are mounted only when
// admin is non-nil.
func NewRouter(
	cfg *config.APIServerConfig,
	svc airdropservice.Service,
	admin auth.TokenValidator,
	logger *zap.Logger,
) chi.Router {
	requestTimeout := cfg.Server.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		apphttp.DefaultErrorHandler(w, apperrors.ResourceNotFoundError(nil, "Not found"))
	})

	// Health checks
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/api-health", func(w http.ResponseWriter, _ *http.Request) {
		apphttp.WriteJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(airdrop.TimestampLayout),
		})
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	airdropservice.RegisterRoutes(r, svc, logger)

	if admin != nil {
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireBearer(admin, logger))
			airdropservice.RegisterAdminRoutes(r, svc, logger)
		})
	}

	return r
}
