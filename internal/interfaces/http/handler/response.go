package handler

import "github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/interfaces/http/dto"

// APIResponse represents a generic API response for OpenAPI documentation
// @Description Standard API response wrapper with typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// SuccessResponse represents a simple success API response for OpenAPI documentation
// @Description Simple success response without data
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// YearsData represents the fiscal years of one company
// @Description Fiscal years with recorded statements
type YearsData struct {
	Years []int `json:"years"`
}

// CredentialStatusData represents the relay credential state
// @Description Whether a usable bearer token is currently held
type CredentialStatusData struct {
	Present bool `json:"present"`
}

// RevalidationData reports which cache scope a revalidation request hit
// @Description Scope of an applied revalidation signal
type RevalidationData struct {
	Scope string `json:"scope" example:"scenario"`
}
