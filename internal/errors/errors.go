package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// API errors (API-001 to API-099)
	ErrCodeAPIRequest      ErrorCode = "API-001"
	ErrCodeAPINetwork      ErrorCode = "API-002"
	ErrCodeAPIUnauthorized ErrorCode = "API-003"
	ErrCodeAPIValidation   ErrorCode = "API-004"
	ErrCodeAPIServer       ErrorCode = "API-005"
	ErrCodeAPIDecode       ErrorCode = "API-006"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionAnonymous     ErrorCode = "SESSION-001"
	ErrCodeSessionAuthenticated ErrorCode = "SESSION-002"
	ErrCodeSessionTokenLoad     ErrorCode = "SESSION-003"
	ErrCodeSessionTokenSave     ErrorCode = "SESSION-004"

	// Cart errors (CART-001 to CART-099)
	ErrCodeCartQuantity ErrorCode = "CART-001"
	ErrCodeCartAbsent   ErrorCode = "CART-002"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigRead    ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-002"

	// Input errors (INPUT-001 to INPUT-099)
	ErrCodeInputRequired ErrorCode = "INPUT-001"
	ErrCodeInputInvalid  ErrorCode = "INPUT-002"
)

// BasketeerError represents an enhanced error with code, suggestions, and documentation
type BasketeerError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *BasketeerError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *BasketeerError) Unwrap() error {
	return e.Cause
}

// New creates a new BasketeerError
func New(code ErrorCode, message string) *BasketeerError {
	return &BasketeerError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new BasketeerError with a formatted message
func Newf(code ErrorCode, format string, args ...any) *BasketeerError {
	return &BasketeerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new BasketeerError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *BasketeerError {
	return &BasketeerError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *BasketeerError) WithSuggestion(suggestion string) *BasketeerError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// CodeOf returns the error code carried by err, or an empty code
// if err is not a BasketeerError.
func CodeOf(err error) ErrorCode {
	var berr *BasketeerError
	if stderrors.As(err, &berr) {
		return berr.Code
	}
	return ""
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// UserMessage returns the message a view should surface for err.
// Validation failures carry the server's message verbatim; everything
// else collapses to a generic fallback per the error taxonomy.
func UserMessage(err error) string {
	var berr *BasketeerError
	if !stderrors.As(err, &berr) {
		return "Something went wrong. Please try again."
	}

	switch berr.Code {
	case ErrCodeAPIValidation, ErrCodeCartQuantity, ErrCodeInputRequired, ErrCodeInputInvalid:
		return berr.Message
	case ErrCodeAPIUnauthorized, ErrCodeSessionAnonymous:
		return "You are not logged in. Run 'basketeer auth login' first."
	case ErrCodeAPINetwork:
		return "Could not reach the server. Check your connection and try again."
	default:
		return "Something went wrong. Please try again."
	}
}
