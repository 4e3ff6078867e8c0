package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// AnalysisHandler serves the cached analysis snapshot for one pair
type AnalysisHandler struct {
	BaseHandler
	analysis *dashboard.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysis *dashboard.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// RegisterRoutes registers the analysis routes
func (h *AnalysisHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies/:id/scenarios/:scenario_id/analysis", h.Get)
}

// Get godoc
// @ID           getScenarioAnalysis
// @Summary      Get the scenario analysis
// @Description  Returns the historical and forecast figures with derived calculations for one company/scenario pair, cached until the pair is revalidated
// @Tags         analysis
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        scenario_id path string true "Scenario ID" format(uuid)
// @Success      200 {object} APIResponse[analysis.ScenarioAnalysis]
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/scenarios/{scenario_id}/analysis [get]
func (h *AnalysisHandler) Get(c *gin.Context) {
	companyID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	scenarioID, ok := h.uuidParam(c, "scenario_id")
	if !ok {
		return
	}

	snapshot, err := h.analysis.Snapshot(c.Request.Context(), companyID, scenarioID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshot)
}
