package main

import (
	"net/http"
	"os"

	"terravista-listings/internal/handlers"
	"terravista-listings/internal/middleware"
	"terravista-listings/internal/repositories"
	"terravista-listings/internal/services"
	"terravista-listings/internal/transformers"
	"terravista-listings/internal/validators"
	"terravista-listings/pkg/cache"
	"terravista-listings/pkg/config"
	"terravista-listings/pkg/listings"
	"terravista-listings/pkg/logger"
	"terravista-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	PropertyHandler *handlers.PropertyHandler
	ProxyHandler    *handlers.ProxyHandler
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the Redis cache when enabled
func (a *App) initializeCache() {
	if !a.Config.Redis.Enabled {
		logger.GlobalLogger.Println("Redis cache disabled, running without cache")
		return
	}
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// upstream client
	client := listings.NewClient(a.Config.Upstream.BaseURL)

	// cache repository
	var listingCache repositories.ListingCache
	if a.Config.Redis.Enabled {
		listingCache = repositories.NewListingCache()
	} else {
		listingCache = repositories.NewNoopListingCache()
	}

	// transformers
	propTrans := transformers.NewPropertyTransformer()

	// validators
	listingValidator := validators.NewListingValidator()

	// services
	listingService := services.NewListingService(client, listingCache, propTrans, listingValidator, a.Config.Upstream.FetchCap)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(listingService)
	a.ProxyHandler = handlers.NewProxyHandler(client)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.Config.Redis.Enabled {
		cache.CloseRedis()
	}
}
