package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/algotutor/backend/internal/config"
	httph "github.com/algotutor/backend/internal/http"
	"github.com/algotutor/backend/internal/logging"
	"github.com/algotutor/backend/internal/middleware"
	"github.com/algotutor/backend/internal/monitoring"
	"github.com/algotutor/backend/internal/presets"
	"github.com/algotutor/backend/internal/providers"
	"github.com/algotutor/backend/internal/service"
	"github.com/algotutor/backend/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	registry *service.Registry
	presets  *presets.Store
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	httpSrv  *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger := logging.FromConfig(cfg.Logging.Level, cfg.Logging.Development)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := monitoring.NewMetrics()

	serviceRegistry := service.NewRegistry()
	registerProviders(serviceRegistry, logger)

	presetStore := presets.NewStore(logger)
	if cfg.Presets.Enabled {
		if err := presetStore.LoadDir(cfg.Presets.Dir); err != nil {
			logger.Warn("failed to load presets", zap.Error(err))
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(monitoring.Instrument(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := httph.NewHandlers(serviceRegistry, presetStore, metrics, logger)
	wsHandler := ws.NewHandler(serviceRegistry, presetStore, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Exercise presets
	router.GET("/presets", handlers.ListPresets)
	router.GET("/presets/:id", handlers.GetPreset)
	router.POST("/presets/:id/execute", handlers.ExecutePreset)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// WebSocket trace playback
	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		cfg:      cfg,
		router:   router,
		registry: serviceRegistry,
		presets:  presetStore,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// Run starts the server and blocks until it stops
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.logger.Info("starting AlgoTutor backend",
		zap.String("addr", addr),
		zap.String("version", httph.Version))

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Close cleans up resources
func (s *Server) Close() error {
	// Flush buffered log entries; stdout sync errors are harmless.
	_ = s.logger.Sync()
	return nil
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func registerProviders(registry *service.Registry, logger *logging.Logger) {
	all := []service.Provider{
		providers.NewRadix(),
		providers.NewSets(),
		providers.NewSearching(),
		providers.NewSorting(),
	}

	for _, p := range all {
		def := p.Definition()
		if err := registry.Register(p); err != nil {
			logger.Warn("failed to register provider",
				zap.String("service", def.ID),
				zap.Error(err))
			continue
		}
		logger.Info("registered service",
			zap.String("service", def.ID),
			zap.Int("tools", len(def.Tools)))
	}

	stats := registry.Stats()
	logger.Info("service registry ready",
		zap.Any("total_services", stats["total_services"]),
		zap.Any("total_tools", stats["total_tools"]))
}
