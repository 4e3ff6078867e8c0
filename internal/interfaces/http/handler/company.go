package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company directory API endpoints
type CompanyHandler struct {
	BaseHandler
	companies *dashboard.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companies *dashboard.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// RegisterRoutes registers the company routes
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	companies.GET("", h.List)
	companies.POST("", h.Create)
	companies.GET("/:id", h.GetByID)
	companies.PUT("/:id", h.Update)
	companies.DELETE("/:id", h.Delete)
}

// List godoc
// @ID           listCompanies
// @Summary      List companies
// @Description  Returns the cached company directory, fetching it from the analytical service on first use
// @Tags         companies
// @Produce      json
// @Success      200 {object} APIResponse[[]CompanyResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCompanyResponses(companies))
}

// GetByID godoc
// @ID           getCompanyById
// @Summary      Get company by ID
// @Description  Retrieve a single company from the cached directory
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Success      200 {object} APIResponse[CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	found, err := h.companies.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCompanyResponse(*found))
}

// Create godoc
// @ID           createCompany
// @Summary      Create a new company
// @Description  Create a company in the analytical service and refresh the cached directory
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        request body CompanyRequest true "Company creation request"
// @Success      201 {object} APIResponse[CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.companies.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCompanyResponse(*created))
}

// Update godoc
// @ID           updateCompany
// @Summary      Update a company
// @Description  Update a company in the analytical service and refresh the cached directory
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Param        request body CompanyRequest true "Company update request"
// @Success      200 {object} APIResponse[CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.companies.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCompanyResponse(*updated))
}

// Delete godoc
// @ID           deleteCompany
// @Summary      Delete a company
// @Description  Delete a company and drop every cached view derived from it, including the selection if it pointed there
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.companies.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
