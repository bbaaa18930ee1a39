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
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
)

// Error codes for the sale finalization path. Handlers and callers match on
// these codes rather than on error identity.
const (
	ErrCodeConfigurationMissing    = "CONFIGURATION_MISSING"
	ErrCodeConfigurationIncomplete = "CONFIGURATION_INCOMPLETE"
	ErrCodeInsufficientStock       = "INSUFFICIENT_STOCK"
	ErrCodeDuplicateJournal        = "DUPLICATE_JOURNAL"
	ErrCodeUnbalancedJournal       = "UNBALANCED_JOURNAL"
	ErrCodeDegenerateEntry         = "DEGENERATE_ENTRY"
	ErrCodeIrreversibleSale        = "IRREVERSIBLE_SALE"
	ErrCodeEmptyCart               = "EMPTY_CART"
)

// IsDomainErrorWithCode reports whether err is a DomainError carrying code.
func IsDomainErrorWithCode(err error, code string) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == code
}
