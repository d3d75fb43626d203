package shared

import "errors"

// DomainError represents a domain-level error with a user-facing message
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

// Remote data service errors. The backend clients map every transport or
// payload failure onto one of these sentinels so callers can classify with
// errors.Is without knowing about HTTP.
var (
	// ErrBackendUnavailable indicates the remote service could not be reached
	ErrBackendUnavailable = errors.New("remote service unavailable")
	// ErrRequestFailed indicates the remote service answered with a non-success status
	ErrRequestFailed = errors.New("remote request failed")
	// ErrInvalidResponse indicates the remote service returned a malformed payload
	ErrInvalidResponse = errors.New("invalid remote response")
	// ErrNotFound indicates the requested resource does not exist on the remote service
	ErrNotFound = errors.New("resource not found")
)
