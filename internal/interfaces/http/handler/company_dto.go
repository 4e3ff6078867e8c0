package handler

import "github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/company"

// CompanyResponse represents a company in API responses
// @Description Company directory entry returned by the API
type CompanyResponse struct {
	ID     string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name   string `json:"name" example:"Rossi Costruzioni S.r.l."`
	TaxID  string `json:"tax_id,omitempty" example:"01234567890"`
	Sector int    `json:"sector" example:"4" enums:"1,2,3,4,5,6"`
	Notes  string `json:"notes,omitempty" example:"Cliente storico"`
}

// CompanyRequest represents a request to create or update a company.
// Field rules are enforced by the domain layer so that rejections carry
// the specific INVALID_* codes instead of a generic binding error.
// @Description Request body for creating or updating a company
type CompanyRequest struct {
	Name   string `json:"name" example:"Rossi Costruzioni S.r.l."`
	TaxID  string `json:"tax_id" example:"01234567890"`
	Sector int    `json:"sector" example:"4" enums:"1,2,3,4,5,6"`
	Notes  string `json:"notes" example:"Cliente storico"`
}

// toInput converts the request into the domain input value
func (r CompanyRequest) toInput() company.Input {
	return company.Input{
		Name:   r.Name,
		TaxID:  r.TaxID,
		Sector: company.SectorCode(r.Sector),
		Notes:  r.Notes,
	}
}

// toCompanyResponse converts a domain company to its response DTO
func toCompanyResponse(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:     c.ID.String(),
		Name:   c.Name,
		TaxID:  c.TaxID,
		Sector: int(c.Sector),
		Notes:  c.Notes,
	}
}

// toCompanyResponses converts a slice of domain companies
func toCompanyResponses(companies []company.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	return out
}
