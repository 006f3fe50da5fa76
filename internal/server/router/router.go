package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeland-tools/grazeplan/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(calc *handlers.CalculatorHandler, farms *handlers.FarmHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	calcGroup := api.Group("/calc")
	calcGroup.POST("/animal-units", calc.AnimalUnits)
	calcGroup.POST("/animal-units/projection", calc.Projection)
	calcGroup.POST("/pasture-yield", calc.PastureYield)
	calcGroup.POST("/grazing-plan", calc.GrazingPlan)
	api.GET("/climate", calc.Climate)

	farmGroup := api.Group("/farms")
	farmGroup.POST("", farms.CreateFarm)
	farmGroup.GET("", farms.ListFarms)
	farmGroup.GET("/:id", farms.GetFarm)
	farmGroup.DELETE("/:id", farms.DeleteFarm)
	farmGroup.POST("/:id/paddocks", farms.CreatePaddock)
	farmGroup.GET("/:id/paddocks", farms.ListPaddocks)
	farmGroup.POST("/:id/herds", farms.CreateHerd)
	farmGroup.GET("/:id/herds", farms.ListHerds)
	farmGroup.POST("/:id/plans", farms.CreatePlan)
	farmGroup.GET("/:id/plans", farms.ListPlans)

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
