package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coffee-insights/internal/domain"
)

// reportHandler serves a computed report.
type reportHandler struct {
	report *domain.Report
	logger *zap.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(report *domain.Report, logger *zap.Logger) *reportHandler {
	return &reportHandler{
		report: report,
		logger: logger,
	}
}

// section returns the part of the report answering question, which is
// either its number or its name.
func section(r *domain.Report, question string) (interface{}, bool) {
	switch question {
	case "0", "overview":
		return r.Overview, true
	case "1", "weekday":
		return r.Weekday, true
	case "2", "hourly":
		return r.Hourly, true
	case "3", "monthly":
		return r.Monthly, true
	case "4", "products":
		return r.Products, true
	case "5", "low-volume":
		return r.LowVolume, true
	case "6", "price-volume":
		return r.PriceVolume, true
	case "7", "staffing":
		return r.Staffing, true
	case "8", "trends":
		return r.Trends, true
	}
	return nil, false
}

// handleGetReport handles the GET /report endpoint.
func (h *reportHandler) handleGetReport(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.report)
}

// handleGetQuestion handles the GET /report/:question endpoint.
func (h *reportHandler) handleGetQuestion(ctx *gin.Context) {
	question := ctx.Param("question")

	body, ok := section(h.report, question)
	if !ok {
		h.logger.Warn("unknown question requested", zap.String("question", question))
		ctx.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	ctx.JSON(http.StatusOK, body)
}
