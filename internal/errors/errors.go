// Package errors provides custom error types for the fingraph API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	ErrLedger              = &AppError{Code: "LEDGER_ERROR", Message: "Ledger store operation failed", StatusCode: http.StatusInternalServerError}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Graph projection errors.
var (
	ErrGraphUnavailable   = &AppError{Code: "GRAPH_UNAVAILABLE", Message: "Graph store is unreachable", StatusCode: http.StatusBadGateway}
	ErrCategoryNotInGraph = &AppError{Code: "CATEGORY_NOT_IN_GRAPH", Message: "Transaction category has no matching node in the graph", StatusCode: http.StatusConflict}
	ErrQueryFailed        = &AppError{Code: "QUERY_FAILED", Message: "Graph query execution failed", StatusCode: http.StatusBadGateway}
)

// Conversation errors.
var (
	ErrUnknownCapability = &AppError{Code: "UNKNOWN_CAPABILITY", Message: "Reasoner requested an unknown capability", StatusCode: http.StatusBadGateway}
	ErrReasoner          = &AppError{Code: "REASONER_ERROR", Message: "Reasoning backend call failed", StatusCode: http.StatusBadGateway}
)
