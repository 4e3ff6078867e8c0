package dto

import "net/http"

// Transport-level error codes, produced by the HTTP layer itself.
// Domain errors keep their own codes (NOT_FOUND, NO_SCENARIO, ...) and are
// mapped to status codes below without renaming.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeValidation is used when request binding validation fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeNotFound is used when a route or resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// The domain section keys on the codes carried by shared.DomainError.
var ErrorCodeHTTPStatus = map[string]int{
	// Transport errors
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeNotFound:    http.StatusNotFound,
	ErrCodeRateLimited: http.StatusTooManyRequests,

	// Resource errors
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,

	// Local validation errors -> 400 Bad Request
	"INVALID_INPUT":  http.StatusBadRequest,
	"INVALID_NAME":   http.StatusBadRequest,
	"INVALID_TAX_ID": http.StatusBadRequest,
	"INVALID_SECTOR": http.StatusBadRequest,
	"INVALID_NOTES":  http.StatusBadRequest,

	// Credential errors. CREDENTIAL_MISSING means the host application has
	// not pushed a bearer token yet, which is an authentication gap from
	// the caller's point of view.
	"UNAUTHORIZED":       http.StatusUnauthorized,
	"CREDENTIAL_MISSING": http.StatusUnauthorized,

	// Upstream errors -> 502 Bad Gateway; the analytical service failed,
	// not this layer
	"UPSTREAM_UNAVAILABLE": http.StatusBadGateway,
	"UPSTREAM_REJECTED":    http.StatusBadGateway,

	// Business rule errors
	"NO_SCENARIO":     http.StatusUnprocessableEntity,
	"STALE_SELECTION": http.StatusConflict,

	// Export pipeline errors
	"EXPORT_FAILED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
