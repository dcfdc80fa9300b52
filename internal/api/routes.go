package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Kamar-Folarin/commit-insights/docs"
)

// @title Commit Insights API
// @version 1.0
// @description Ingests GitHub push webhooks and serves commit listings and activity analytics
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// SetupRouter configures the API routes
func SetupRouter(h *Handler, allowedOrigins []string, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger), cors.New(corsConfig(allowedOrigins)))

	r.GET("/healthz", h.HealthCheck)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/webhooks/github", h.HandleGitHubWebhook)
		v1.GET("/commits", h.ListCommits)
		v1.GET("/commits/:sha", h.GetCommit)
		v1.GET("/analytics/overview", h.GetOverview)
	}

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", headerEvent, headerSignature},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowedOrigins
	return cfg
}

// requestLogger logs one structured line per request
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("Request completed")
			return
		}
		entry.Info("Request completed")
	}
}
