package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(calculators *handlers.CalculatorHandler, projections *handlers.ProjectionHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	ref := r.Group("/reference")
	ref.GET("/seed-origins", calculators.SeedOrigins)
	ref.GET("/constants", calculators.Constants)

	calc := r.Group("/calculators")
	calc.POST("/seeding", calculators.Seeding)
	calc.POST("/harvest/cost", calculators.HarvestCost)
	calc.POST("/harvest/profitability", calculators.HarvestProfitability)
	calc.POST("/sectors/occupancy", calculators.SectorOccupancy)
	calc.POST("/growth", calculators.Growth)
	calc.POST("/investment", calculators.Investment)
	calc.POST("/integrated", calculators.Integrated)

	r.POST("/projections", projections.Create)
	r.GET("/projections/:id", projections.Get)
	r.POST("/projections/monte-carlo", projections.MonteCarlo)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
