package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidNumber is used when a numeric field fails to parse
	ErrCodeInvalidNumber = "ERR_INVALID_NUMBER"
	// ErrCodeInvalidImport is used when an import payload is not a JSON array
	ErrCodeInvalidImport = "ERR_INVALID_IMPORT"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
)

// Capability error codes
const (
	// ErrCodeUnavailable is used when a capability (scanner, renderer) is
	// not available on this installation
	ErrCodeUnavailable = "ERR_UNAVAILABLE"
	// ErrCodeRenderFailed is used when PDF generation fails
	ErrCodeRenderFailed = "ERR_RENDER_FAILED"
	// ErrCodeRenderTimeout is used when PDF generation exceeds its deadline
	ErrCodeRenderTimeout = "ERR_RENDER_TIMEOUT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidNumber: http.StatusBadRequest,
	ErrCodeInvalidImport: http.StatusBadRequest,

	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeUnavailable:   http.StatusServiceUnavailable,
	ErrCodeRenderFailed:  http.StatusInternalServerError,
	ErrCodeRenderTimeout: http.StatusGatewayTimeout,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the standardized
// transport codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"INVALID_INPUT":  ErrCodeInvalidInput,
	"INVALID_NUMBER": ErrCodeInvalidNumber,
	"INVALID_IMPORT": ErrCodeInvalidImport,
	"INVALID_NAME":   ErrCodeInvalidInput,
	"INVALID_TITLE":  ErrCodeInvalidInput,
	"INVALID_DATE":   ErrCodeInvalidInput,
	"INVALID_TAB":    ErrCodeInvalidInput,
	"UNAVAILABLE":    ErrCodeUnavailable,
	"RENDER_FAILED":  ErrCodeRenderFailed,
	"RENDER_TIMEOUT": ErrCodeRenderTimeout,
	"INVALID_HTML":   ErrCodeRenderFailed,

	"RENDERER_UNAVAILABLE": ErrCodeUnavailable,
}

// NormalizeErrorCode converts a domain error code to the standardized
// format. Unknown codes are returned as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
