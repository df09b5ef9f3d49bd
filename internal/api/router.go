package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coffee-insights/internal/domain"
)

// InitRoutes registers the report endpoints on the given Gin engine.
func InitRoutes(e *gin.Engine, report *domain.Report, logger *zap.Logger) {
	reportHandler := NewReportHandler(report, logger)

	e.GET("/report", reportHandler.handleGetReport)
	e.GET("/report/:question", reportHandler.handleGetQuestion)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
