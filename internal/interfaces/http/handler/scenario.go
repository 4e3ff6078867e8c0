package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/budget"
	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles budget scenario API endpoints
type ScenarioHandler struct {
	BaseHandler
	scenarios *dashboard.ScenarioService
}

// NewScenarioHandler creates a new ScenarioHandler
func NewScenarioHandler(scenarios *dashboard.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{scenarios: scenarios}
}

// RegisterRoutes registers the scenario routes
func (h *ScenarioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies/:id")
	companies.GET("/years", h.Years)
	companies.GET("/scenarios", h.List)
	companies.GET("/scenarios/preferred", h.Preferred)
	companies.PUT("/scenarios/:scenario_id", h.Update)
	companies.PUT("/scenarios/:scenario_id/assumptions", h.SaveAssumptions)
	companies.POST("/scenarios/:scenario_id/forecast", h.GenerateForecast)
}

// ScenarioResponse represents a budget scenario in API responses
// @Description Budget scenario with its base year and type
type ScenarioResponse struct {
	ID        string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CompanyID string `json:"company_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Name      string `json:"name" example:"Budget 2025"`
	BaseYear  int    `json:"base_year" example:"2024"`
	Type      string `json:"scenario_type" example:"annuale" enums:"annuale,infrannuale"`
	IsActive  bool   `json:"is_active" example:"true"`
}

// toScenarioResponse converts a domain scenario to its response DTO
func toScenarioResponse(s budget.BudgetScenario) ScenarioResponse {
	return ScenarioResponse{
		ID:        s.ID.String(),
		CompanyID: s.CompanyID.String(),
		Name:      s.Name,
		BaseYear:  s.BaseYear,
		Type:      string(s.Type),
		IsActive:  s.IsActive,
	}
}

// toScenarioResponses converts a slice of domain scenarios
func toScenarioResponses(scenarios []budget.BudgetScenario) []ScenarioResponse {
	out := make([]ScenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, toScenarioResponse(s))
	}
	return out
}

// Years godoc
// @ID           listCompanyYears
// @Summary      List fiscal years
// @Description  Returns the fiscal years with recorded statements for one company, served from the cached detail bundle
// @Tags         scenarios
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Success      200 {object} APIResponse[YearsData]
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/years [get]
func (h *ScenarioHandler) Years(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	years, err := h.scenarios.Years(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, YearsData{Years: years})
}

// List godoc
// @ID           listCompanyScenarios
// @Summary      List budget scenarios
// @Description  Returns the budget scenarios of one company. With reportable=true, mid-year partial scenarios are filtered out.
// @Tags         scenarios
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        reportable query bool false "Only scenarios usable by reports"
// @Success      200 {object} APIResponse[[]ScenarioResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/scenarios [get]
func (h *ScenarioHandler) List(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var (
		scenarios []budget.BudgetScenario
		err       error
	)
	if c.Query("reportable") == "true" {
		scenarios, err = h.scenarios.Reportable(c.Request.Context(), id)
	} else {
		scenarios, err = h.scenarios.Scenarios(c.Request.Context(), id)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toScenarioResponses(scenarios))
}

// Preferred godoc
// @ID           getPreferredScenario
// @Summary      Get the preferred scenario
// @Description  Resolves the scenario the dashboard should open with: the first active one, else the first listed. Responds 422 when the company has no scenario at all.
// @Tags         scenarios
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Success      200 {object} APIResponse[ScenarioResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/scenarios/preferred [get]
func (h *ScenarioHandler) Preferred(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	preferred, err := h.scenarios.Preferred(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toScenarioResponse(*preferred))
}

// Update godoc
// @ID           updateScenario
// @Summary      Update a budget scenario
// @Description  Forwards the scenario changes to the analytical service. On success all derived data for the pair is dropped and the published overview is marked dirty.
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        scenario_id path string true "Scenario ID" format(uuid)
// @Param        request body map[string]interface{} true "Scenario fields to change"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/scenarios/{scenario_id} [put]
func (h *ScenarioHandler) Update(c *gin.Context) {
	companyID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	scenarioID, ok := h.uuidParam(c, "scenario_id")
	if !ok {
		return
	}
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	if err := h.scenarios.UpdateScenario(c.Request.Context(), companyID, scenarioID, payload); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SaveAssumptions godoc
// @ID           saveScenarioAssumptions
// @Summary      Save forecast assumptions
// @Description  Forwards the assumption values to the analytical service. Derived analysis and commentary for the pair are dropped; the detail bundle survives because assumptions change no scenario metadata.
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        scenario_id path string true "Scenario ID" format(uuid)
// @Param        request body map[string]interface{} true "Assumption values"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/scenarios/{scenario_id}/assumptions [put]
func (h *ScenarioHandler) SaveAssumptions(c *gin.Context) {
	companyID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	scenarioID, ok := h.uuidParam(c, "scenario_id")
	if !ok {
		return
	}
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	if err := h.scenarios.SaveAssumptions(c.Request.Context(), companyID, scenarioID, payload); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GenerateForecast godoc
// @ID           generateForecast
// @Summary      Generate the forecast
// @Description  Asks the analytical service to recompute the forecast from the saved assumptions, then drops the cached analysis and commentary for the pair
// @Tags         scenarios
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        scenario_id path string true "Scenario ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id}/scenarios/{scenario_id}/forecast [post]
func (h *ScenarioHandler) GenerateForecast(c *gin.Context) {
	companyID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	scenarioID, ok := h.uuidParam(c, "scenario_id")
	if !ok {
		return
	}

	if err := h.scenarios.GenerateForecast(c.Request.Context(), companyID, scenarioID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
