package dto

import "net/http"

// Error codes used by the HTTP layer itself. Domain errors carry their
// own codes; both vocabularies share this status table.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeValidation   = "VALIDATION_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	"VALIDATION_ERROR": http.StatusBadRequest,
	"UNAUTHORIZED":     http.StatusUnauthorized,
	"FORBIDDEN":        http.StatusForbidden,
	"NOT_FOUND":        http.StatusNotFound,

	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rule violations carry enough context for the client to
	// retry with different input.
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,

	"REQUEST_TOO_LARGE":   http.StatusRequestEntityTooLarge,
	"RATE_LIMIT_EXCEEDED": http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting
// to 500 for codes the table does not know.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
