package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// ExportHandler initiates PDF exports
type ExportHandler struct {
	BaseHandler
	exports *dashboard.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exports *dashboard.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// RegisterRoutes registers the export routes
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/companies/:id/scenarios/:scenario_id/export", h.Export)
}

// Export godoc
// @ID           exportScenarioPDF
// @Summary      Export the report as PDF
// @Description  Streams the rendered PDF from the analytical service into the configured artifact store and returns where it landed. The filename is derived from the company name and scenario base year.
// @Tags         exports
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        scenario_id path string true "Scenario ID" format(uuid)
// @Success      200 {object} APIResponse[dashboard.ExportResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/scenarios/{scenario_id}/export [post]
func (h *ExportHandler) Export(c *gin.Context) {
	companyID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	scenarioID, ok := h.uuidParam(c, "scenario_id")
	if !ok {
		return
	}

	result, err := h.exports.Export(c.Request.Context(), companyID, scenarioID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
