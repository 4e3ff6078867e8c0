package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/budget"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OverviewHandler serves the bulk dashboard overview: the company
// directory joined with each company's fiscal years and budget scenarios.
type OverviewHandler struct {
	BaseHandler
	companies   *dashboard.CompanyService
	details     *dashboard.DetailService
	revalidator *dashboard.Revalidator
}

// NewOverviewHandler creates a new OverviewHandler
func NewOverviewHandler(companies *dashboard.CompanyService, details *dashboard.DetailService, revalidator *dashboard.Revalidator) *OverviewHandler {
	return &OverviewHandler{companies: companies, details: details, revalidator: revalidator}
}

// RegisterRoutes registers the overview routes
func (h *OverviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	overview := rg.Group("/overview")
	overview.GET("", h.Get)
	overview.POST("/refresh", h.Refresh)
}

// OverviewEntry represents one company row of the dashboard overview
// @Description Company with its fiscal years and budget scenarios
type OverviewEntry struct {
	Company             CompanyResponse    `json:"company"`
	Years               []int              `json:"years"`
	Scenarios           []ScenarioResponse `json:"scenarios"`
	PreferredScenarioID string             `json:"preferred_scenario_id,omitempty"`
}

// OverviewResponse represents the assembled dashboard overview
// @Description Company directory joined with per-company details
type OverviewResponse struct {
	Entries []OverviewEntry `json:"entries"`
}

// Get godoc
// @ID           getOverview
// @Summary      Get the dashboard overview
// @Description  Returns every company with its fiscal years and scenarios. Details are served from the published snapshot and rebuilt only when the directory changed; a company whose detail load failed appears with empty lists rather than blocking the page.
// @Tags         overview
// @Produce      json
// @Success      200 {object} APIResponse[OverviewResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /overview [get]
func (h *OverviewHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	companies, err := h.companies.List(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	details, err := h.details.EnsureFresh(ctx, companies)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	entries := make([]OverviewEntry, 0, len(companies))
	for _, comp := range companies {
		detail, ok := details[comp.ID]
		if !ok {
			detail = budget.EmptyDetail()
		}

		entry := OverviewEntry{
			Company:   toCompanyResponse(comp),
			Years:     detail.Years,
			Scenarios: toScenarioResponses(detail.Scenarios),
		}
		if preferred := budget.PreferredScenario(detail.Scenarios); preferred != nil {
			entry.PreferredScenarioID = preferred.ID.String()
		}
		entries = append(entries, entry)
	}

	h.Success(c, OverviewResponse{Entries: entries})
}

// Refresh godoc
// @ID           refreshOverview
// @Summary      Force a full overview rebuild
// @Description  Flushes every cached view, marks the published detail snapshot dirty and reloads from the analytical service before responding
// @Tags         overview
// @Produce      json
// @Success      200 {object} APIResponse[OverviewResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /overview/refresh [post]
func (h *OverviewHandler) Refresh(c *gin.Context) {
	h.revalidator.Revalidate(uuid.Nil, uuid.Nil)
	h.details.MarkDirty()
	h.Get(c)
}
