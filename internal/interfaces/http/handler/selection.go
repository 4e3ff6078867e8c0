package handler

import (
	"errors"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SelectionHandler handles the active company/scenario selection endpoints.
// The selection drives which pair the commentary generator bills against, so
// every change bumps a generation counter that in-flight generations compare
// against before publishing.
type SelectionHandler struct {
	BaseHandler
	selection *dashboard.Selection
	companies *dashboard.CompanyService
	scenarios *dashboard.ScenarioService
}

// NewSelectionHandler creates a new SelectionHandler
func NewSelectionHandler(selection *dashboard.Selection, companies *dashboard.CompanyService, scenarios *dashboard.ScenarioService) *SelectionHandler {
	return &SelectionHandler{selection: selection, companies: companies, scenarios: scenarios}
}

// RegisterRoutes registers the selection routes
func (h *SelectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sel := rg.Group("/selection")
	sel.GET("", h.Get)
	sel.PUT("", h.Set)
	sel.DELETE("", h.Clear)
}

// SetSelectionRequest is the payload for changing the active selection
// @Description Company to select, with an optional explicit scenario. Without a scenario the preferred one is resolved automatically.
type SetSelectionRequest struct {
	CompanyID  string `json:"company_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440001"`
	ScenarioID string `json:"scenario_id,omitempty" binding:"omitempty,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// SelectionResponse represents the active selection
// @Description Active company/scenario pair. ScenarioID is empty when the company has no usable scenario yet.
type SelectionResponse struct {
	CompanyID  string `json:"company_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	ScenarioID string `json:"scenario_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Generation uint64 `json:"generation" example:"4"`
}

func toSelectionResponse(companyID, scenarioID uuid.UUID, gen uint64) SelectionResponse {
	resp := SelectionResponse{CompanyID: companyID.String(), Generation: gen}
	if scenarioID != uuid.Nil {
		resp.ScenarioID = scenarioID.String()
	}
	return resp
}

// Get godoc
// @ID           getSelection
// @Summary      Get the active selection
// @Description  Returns the currently selected company/scenario pair and its generation counter
// @Tags         selection
// @Produce      json
// @Success      200 {object} APIResponse[SelectionResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /selection [get]
func (h *SelectionHandler) Get(c *gin.Context) {
	companyID, scenarioID, gen, ok := h.selection.Current()
	if !ok {
		h.NotFound(c, "No company is selected")
		return
	}

	h.Success(c, toSelectionResponse(companyID, scenarioID, gen))
}

// Set godoc
// @ID           setSelection
// @Summary      Change the active selection
// @Description  Selects a company and scenario. With no explicit scenario the preferred scenario is resolved; a company without any scenario is still selectable and the response carries no scenario ID.
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        request body SetSelectionRequest true "Selection to activate"
// @Success      200 {object} APIResponse[SelectionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /selection [put]
func (h *SelectionHandler) Set(c *gin.Context) {
	var req SetSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		h.BadRequest(c, "company_id must be a valid UUID")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.companies.Get(ctx, companyID); err != nil {
		h.HandleError(c, err)
		return
	}

	scenarioID := uuid.Nil
	if req.ScenarioID != "" {
		scenarioID, err = uuid.Parse(req.ScenarioID)
		if err != nil {
			h.BadRequest(c, "scenario_id must be a valid UUID")
			return
		}
		scenarios, err := h.scenarios.Scenarios(ctx, companyID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		found := false
		for _, s := range scenarios {
			if s.ID == scenarioID {
				found = true
				break
			}
		}
		if !found {
			h.NotFound(c, "Scenario does not belong to the selected company")
			return
		}
	} else {
		preferred, err := h.scenarios.Preferred(ctx, companyID)
		switch {
		case errors.Is(err, shared.ErrNoScenario):
			// Selectable anyway; the UI prompts for scenario creation.
		case err != nil:
			h.HandleError(c, err)
			return
		default:
			scenarioID = preferred.ID
		}
	}

	gen := h.selection.Set(companyID, scenarioID)
	h.Success(c, toSelectionResponse(companyID, scenarioID, gen))
}

// Clear godoc
// @ID           clearSelection
// @Summary      Clear the active selection
// @Description  Drops the active selection. Any commentary generation still running for the old pair will discard its result.
// @Tags         selection
// @Success      204 "No Content"
// @Router       /selection [delete]
func (h *SelectionHandler) Clear(c *gin.Context) {
	h.selection.Clear()
	h.NoContent(c)
}
