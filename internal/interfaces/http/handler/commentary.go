package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/commentary"
	"github.com/gin-gonic/gin"
)

// CommentaryHandler handles AI commentary endpoints
type CommentaryHandler struct {
	BaseHandler
	commentary    *dashboard.CommentaryService
	generateGuard gin.HandlerFunc
}

// NewCommentaryHandler creates a new CommentaryHandler
func NewCommentaryHandler(commentarySvc *dashboard.CommentaryService) *CommentaryHandler {
	return &CommentaryHandler{commentary: commentarySvc}
}

// SetGenerateGuard injects middleware in front of the generate route
// (optional dependency). Generation is billed per call, so the route gets
// its own rate limit. Must be set before RegisterRoutes.
func (h *CommentaryHandler) SetGenerateGuard(guard gin.HandlerFunc) {
	h.generateGuard = guard
}

// RegisterRoutes registers the commentary routes
func (h *CommentaryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/commentary", h.Get)
	if h.generateGuard != nil {
		rg.POST("/commentary/generate", h.generateGuard, h.Generate)
	} else {
		rg.POST("/commentary/generate", h.Generate)
	}
	rg.GET("/companies/:id/scenarios/:scenario_id/commentary", h.ForPair)
}

// GenerateCommentaryData is the outcome of a generation request
// @Description Commentary sections after the generation attempt plus a notice describing how it went. Failed or discarded generations still respond 200; the notice tells the UI what to show.
type GenerateCommentaryData struct {
	Commentary commentary.Map   `json:"commentary"`
	Notice     dashboard.Notice `json:"notice"`
}

// Get godoc
// @ID           getCommentary
// @Summary      Get commentary for the active selection
// @Description  Returns the stored commentary sections for the currently selected pair, fetching from the analytical service on first access. Empty when nothing is selected.
// @Tags         commentary
// @Produce      json
// @Success      200 {object} APIResponse[commentary.Map]
// @Router       /commentary [get]
func (h *CommentaryHandler) Get(c *gin.Context) {
	h.Success(c, h.commentary.Hydrate(c.Request.Context()))
}

// Generate godoc
// @ID           generateCommentary
// @Summary      Generate fresh commentary
// @Description  Asks the AI engine to write new commentary for the selected pair. Always responds 200; the notice carries the outcome, including the case where the selection changed mid-generation and the result was discarded.
// @Tags         commentary
// @Produce      json
// @Success      200 {object} APIResponse[GenerateCommentaryData]
// @Failure      429 {object} ErrorResponse
// @Router       /commentary/generate [post]
func (h *CommentaryHandler) Generate(c *gin.Context) {
	m, notice := h.commentary.Generate(c.Request.Context())
	h.Success(c, GenerateCommentaryData{Commentary: m, Notice: notice})
}

// ForPair godoc
// @ID           getPairCommentary
// @Summary      Get commentary for one pair
// @Description  Returns the stored commentary for an explicit company/scenario pair regardless of the active selection. Used by report assembly and deep links.
// @Tags         commentary
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        scenario_id path string true "Scenario ID" format(uuid)
// @Success      200 {object} APIResponse[commentary.Map]
// @Failure      400 {object} ErrorResponse
// @Router       /companies/{id}/scenarios/{scenario_id}/commentary [get]
func (h *CommentaryHandler) ForPair(c *gin.Context) {
	companyID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	scenarioID, ok := h.uuidParam(c, "scenario_id")
	if !ok {
		return
	}

	h.Success(c, h.commentary.ForPair(c.Request.Context(), companyID, scenarioID))
}
