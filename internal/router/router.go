package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/ingrecipe/backend/internal/api"
	"github.com/pageza/ingrecipe/backend/internal/metrics"
	"github.com/pageza/ingrecipe/backend/internal/middleware"
)

// Dependencies collects what the router wires into handlers. RateLimiter
// and Metrics may be nil.
type Dependencies struct {
	MatchHandler   *api.MatchHandler
	RecipeHandler  *api.RecipeHandler
	Health         api.Pinger
	RateLimiter    *middleware.RateLimiter
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	Logger         *zap.Logger
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	// RequestLogger wraps recovery so panicking requests are still logged
	router.Use(middleware.RequestLogger(deps.Logger, deps.Metrics))
	router.Use(middleware.ErrorHandler(deps.Logger))
	router.Use(middleware.CORS(deps.AllowedOrigins))

	router.GET("/health", api.HealthCheck(deps.Health))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	matchChain := []gin.HandlerFunc{}
	if deps.RateLimiter != nil {
		matchChain = append(matchChain, deps.RateLimiter.Middleware())
	}

	// Unversioned endpoint used by the web client
	router.POST("/recipe", append(matchChain, deps.MatchHandler.Match)...)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		match := v1.Group("", matchChain...)
		deps.MatchHandler.RegisterRoutes(match)
		deps.RecipeHandler.RegisterRoutes(v1)
	}

	return router
}
