package api

import (
	"log/slog"
	"net/http"

	"adwords-sim/internal/api/handlers"
	"adwords-sim/internal/api/middleware"
	"adwords-sim/internal/data"

	"github.com/gin-gonic/gin"
)

// Options wires the router's dependencies.
type Options struct {
	Logger         *slog.Logger
	Cache          *data.RunCache
	UniverseDir    string
	AllowedOrigins []string
}

// NewRouter builds the HTTP API.
func NewRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Cache == nil {
		opts.Cache = data.NewRunCache(0)
	}

	router := gin.New()
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))

	simulationHandler := handlers.NewSimulationHandler(opts.Cache, opts.UniverseDir, opts.Logger)
	universeHandler := handlers.NewUniverseHandler(opts.UniverseDir, opts.Logger)
	strategyHandler := handlers.NewStrategyHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/strategies", strategyHandler.ListStrategies)

		v1.GET("/universes", universeHandler.ListUniverses)
		v1.GET("/universes/sample", universeHandler.GetSample)

		v1.POST("/simulations", simulationHandler.RunSimulation)
		v1.POST("/simulations/compare", simulationHandler.CompareSimulations)
		v1.GET("/simulations/:id/ledger", simulationHandler.GetLedger)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "route not found"}})
	})

	return router
}
