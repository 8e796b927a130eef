package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biolink/internal/config"
	"biolink/internal/geo"
	"biolink/internal/handler"
	"biolink/internal/model"
	"biolink/internal/mq"
	"biolink/internal/repository"
	"biolink/internal/service"
	"biolink/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Bio Link Tracker API
// @version 1.0
// @description Redirects bio-link visitors and reports where they came from

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Visit store; a failed init leaves the server up in degraded mode
	durable := repository.NewVisitStore(&cfg.Storage)
	defer durable.Close()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	if err := durable.Init(initCtx); err != nil {
		log.Error().Err(err).Msg("Failed to initialize visit store, continuing in degraded mode")
	}
	cancelInit()

	var store repository.VisitStore = durable

	// Route appends through RocketMQ when configured
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, writing visits directly")
		} else {
			store = repository.NewQueuedStore(mqProducer, durable)
		}
	}

	var mqConsumer *mq.Consumer
	if mqProducer != nil {
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, visit *model.Visit) error {
			return durable.Append(ctx, visit)
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Geolocation
	resolver, closeGeo := newResolver(&cfg.Geo, &cfg.Redis)
	defer closeGeo()

	// Initialize services
	trackingSvc := service.NewTrackingService(store, resolver)
	statsSvc := service.NewStatsService(store, cfg.Tracker.AccountName, cfg.Tracker.RecentLimit)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := newRouter(cfg, trackingSvc, statsSvc)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	log.Info().Msg("Server exited")
}

// newRouter builds the gin engine with every route registered
func newRouter(cfg *config.Config, tracker service.TrackingServiceInterface, stats service.StatsServiceInterface) *gin.Engine {
	redirectHandler := handler.NewRedirectHandler(tracker, cfg.Tracker.RedirectURL, cfg.Tracker.Async)
	dashboardHandler := handler.NewDashboardHandler(stats, cfg.Tracker.AccountName)

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(corsMiddleware())

	router.SetHTMLTemplate(handler.LoadTemplates())

	// A panic on the tracked link still sends the visitor on
	router.GET("/", middleware.Recovery(redirectHandler.RedirectFallback), redirectHandler.Redirect)

	// A panic on the dashboard still answers with the zero-state page
	router.GET("/dashboard", middleware.Recovery(dashboardHandler.DashboardFallback), dashboardHandler.Dashboard)

	// API v1 routes
	v1 := router.Group("/api/v1", middleware.Recovery(nil))
	{
		v1.GET("/stats", dashboardHandler.Stats)
	}

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", handler.Health)

	return router
}

// newResolver assembles the geo provider chain and optional location cache
func newResolver(geoCfg *config.GeoConfig, redisCfg *config.RedisConfig) (*geo.Resolver, func()) {
	var provider geo.Provider = geo.NewIPAPIProvider(geoCfg.BaseURL, geoCfg.Timeout, geoCfg.RateLimit)
	if geoCfg.Breaker.Enabled {
		provider = geo.NewBreakerProvider(provider, &geoCfg.Breaker)
	}

	closeFn := func() {}
	var cache geo.Cache
	switch geoCfg.Cache {
	case "memory":
		cache = geo.NewMemoryCache(geoCfg.CacheTTL)
	case "redis":
		redisRepo := repository.NewRedisRepository(redisCfg, geoCfg.CacheTTL)
		cache = redisRepo
		closeFn = func() { redisRepo.Close() }
	}

	log.Info().
		Str("provider", provider.Name()).
		Str("cache", geoCfg.Cache).
		Msg("Geo resolver configured")

	return geo.NewResolver(provider, cache, geoCfg.Timeout), closeFn
}

// configPath returns the config file location, overridable with CONFIG_PATH
func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
