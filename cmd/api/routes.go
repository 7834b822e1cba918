package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"terravista-listings/pkg/cache"
	"terravista-listings/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupOperationalRoutes exposes metrics and profiling endpoints
func (a *App) setupOperationalRoutes() {
	// Expose pprof profiling endpoints (disable in production)
	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		if a.Config.Redis.Enabled {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
				logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Proxy for the site's filter requests
		api.POST("/projects", a.ProxyHandler.ForwardProjects)

		properties := api.Group("/properties")
		{
			properties.GET("", a.PropertyHandler.GetProperties)
			properties.GET("/:id", a.PropertyHandler.GetPropertyByID)
			properties.GET("/:id/related", a.PropertyHandler.GetRelatedProperties)
		}
	}
}
