package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrCredentialMissing   = NewDomainError("CREDENTIAL_MISSING", "No access credential available")
	ErrUpstreamUnavailable = NewDomainError("UPSTREAM_UNAVAILABLE", "Analytical service unavailable")
	ErrUpstreamRejected    = NewDomainError("UPSTREAM_REJECTED", "Analytical service rejected the request")
	ErrNoScenario          = NewDomainError("NO_SCENARIO", "Company has no usable budget scenario")
	ErrStaleSelection      = NewDomainError("STALE_SELECTION", "Selection changed while the operation was in flight")
	ErrExportFailed        = NewDomainError("EXPORT_FAILED", "Report export could not be completed")
)
