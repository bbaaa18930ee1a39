package dto

import "net/http"

// Error codes used by the HTTP layer itself. Domain error codes pass
// through unchanged and are mapped to a status below.
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeInternal   = "INTERNAL"
	ErrCodeValidation = "VALIDATION"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:  http.StatusNotFound,
	"LINE_NOT_FOUND": http.StatusNotFound,

	"ALREADY_EXISTS":       http.StatusConflict,
	"ALREADY_CONFIGURED":   http.StatusConflict,
	"DUPLICATE_CODE":       http.StatusConflict,
	"DUPLICATE_JOURNAL":    http.StatusConflict,
	"DUPLICATE_NUMBER":     http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rule violations
	"CONFIGURATION_MISSING":    http.StatusUnprocessableEntity,
	"CONFIGURATION_INCOMPLETE": http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":       http.StatusUnprocessableEntity,
	"IRREVERSIBLE_SALE":        http.StatusUnprocessableEntity,
	"EMPTY_CART":               http.StatusUnprocessableEntity,
	"INVALID_STATE":            http.StatusUnprocessableEntity,
	"ALREADY_DISCONTINUED":     http.StatusUnprocessableEntity,

	// Malformed input
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	"INVALID_INPUT":     http.StatusBadRequest,
	"INVALID_CODE":      http.StatusBadRequest,
	"INVALID_NAME":      http.StatusBadRequest,
	"INVALID_TYPE":      http.StatusBadRequest,
	"INVALID_MODULE":    http.StatusBadRequest,
	"INVALID_PRICE":     http.StatusBadRequest,
	"INVALID_QUANTITY":  http.StatusBadRequest,
	"INVALID_AMOUNT":    http.StatusBadRequest,
	"INVALID_DISCOUNT":  http.StatusBadRequest,
	"INVALID_METHOD":    http.StatusBadRequest,
	"INVALID_CURRENCY":  http.StatusBadRequest,
	"INVALID_REFERENCE": http.StatusBadRequest,
	"INVALID_ROLE":      http.StatusBadRequest,
	"INVALID_WAREHOUSE": http.StatusBadRequest,
	"INVALID_NATURE":    http.StatusBadRequest,
	"INVALID_DOCUMENT":  http.StatusBadRequest,
	"INVALID_NUMBER":    http.StatusBadRequest,
	"INVALID_LABEL":     http.StatusBadRequest,
	"INVALID_NOTES":     http.StatusBadRequest,

	// Integrity failures surface as server errors: a journal that does
	// not balance is a bug, not a caller mistake
	"UNBALANCED_JOURNAL": http.StatusInternalServerError,
	"DEGENERATE_ENTRY":   http.StatusInternalServerError,
	ErrCodeInternal:      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code,
// defaulting to 500 for codes it does not know
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
