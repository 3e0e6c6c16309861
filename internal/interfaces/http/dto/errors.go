package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to the INVALID_ prefix rule, then 500.
var domainCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:   http.StatusNotFound,
	"ALREADY_EXISTS":  http.StatusConflict,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,

	// Business rule violations
	"INVALID_STATE":    http.StatusUnprocessableEntity,
	"COMPLETED_UNPAID": http.StatusUnprocessableEntity,
	"ALREADY_PAID":     http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Validation codes (INVALID_*) map to 400; anything unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
