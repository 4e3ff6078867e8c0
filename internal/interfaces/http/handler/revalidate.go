package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RevalidateHandler exposes the host's refresh signal. The host raises it
// when the operator returns to the dashboard after editing data elsewhere,
// so cached figures get refetched on next access instead of going stale.
type RevalidateHandler struct {
	BaseHandler
	revalidator *dashboard.Revalidator
	details     *dashboard.DetailService
}

// NewRevalidateHandler creates a new RevalidateHandler
func NewRevalidateHandler(revalidator *dashboard.Revalidator, details *dashboard.DetailService) *RevalidateHandler {
	return &RevalidateHandler{revalidator: revalidator, details: details}
}

// RegisterRoutes registers the revalidation route
func (h *RevalidateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/revalidate", h.Revalidate)
}

// RevalidateRequest narrows the flush. Both ids stale one scenario subtree,
// a company alone its whole subtree, an empty body everything.
// @Description Optional scope for the revalidation
type RevalidateRequest struct {
	CompanyID  string `json:"company_id,omitempty" binding:"omitempty,uuid" example:"550e8400-e29b-41d4-a716-446655440001"`
	ScenarioID string `json:"scenario_id,omitempty" binding:"omitempty,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// Revalidate godoc
// @ID           revalidateCache
// @Summary      Stale cached data
// @Description  Drops cached upstream data for the given scope so the next read refetches. A scenario ID needs its company ID; an empty body flushes everything.
// @Tags         system
// @Accept       json
// @Produce      json
// @Param        request body RevalidateRequest false "Scope to flush"
// @Success      200 {object} APIResponse[RevalidationData]
// @Failure      400 {object} ErrorResponse
// @Router       /revalidate [post]
func (h *RevalidateHandler) Revalidate(c *gin.Context) {
	var req RevalidateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	companyID := uuid.Nil
	scenarioID := uuid.Nil
	var err error
	if req.CompanyID != "" {
		if companyID, err = uuid.Parse(req.CompanyID); err != nil {
			h.BadRequest(c, "company_id must be a valid UUID")
			return
		}
	}
	if req.ScenarioID != "" {
		if scenarioID, err = uuid.Parse(req.ScenarioID); err != nil {
			h.BadRequest(c, "scenario_id must be a valid UUID")
			return
		}
	}
	if scenarioID != uuid.Nil && companyID == uuid.Nil {
		h.BadRequest(c, "scenario_id requires company_id")
		return
	}

	h.revalidator.Revalidate(companyID, scenarioID)

	scope := "global"
	switch {
	case scenarioID != uuid.Nil:
		scope = "scenario"
	case companyID != uuid.Nil:
		scope = "company"
	}
	// Company and global flushes drop detail bundles from the cache, so the
	// published overview snapshot must be rebuilt on next read. A scenario
	// flush leaves bundles alone.
	if scope != "scenario" {
		h.details.MarkDirty()
	}

	h.Success(c, RevalidationData{Scope: scope})
}
