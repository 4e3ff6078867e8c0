package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the assembled report document
type ReportHandler struct {
	BaseHandler
	reports *dashboard.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports *dashboard.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// RegisterRoutes registers the report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies/:id/scenarios/:scenario_id/report", h.Get)
}

// Get godoc
// @ID           getScenarioReport
// @Summary      Assemble the report
// @Description  Builds the full report for one pair: dashboard, income statement, balance sheet and cash flow sections with one value per year and commentary attached. Metrics missing for a year render as the n/d placeholder.
// @Tags         reports
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        scenario_id path string true "Scenario ID" format(uuid)
// @Success      200 {object} APIResponse[report.Report]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/scenarios/{scenario_id}/report [get]
func (h *ReportHandler) Get(c *gin.Context) {
	companyID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	scenarioID, ok := h.uuidParam(c, "scenario_id")
	if !ok {
		return
	}

	rep, err := h.reports.Assemble(c.Request.Context(), companyID, scenarioID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rep)
}
