package exitcode

import (
	"os"

	"github.com/basketeer/basketeer/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 3

	// NetworkError indicates a network connectivity issue
	NetworkError = 4

	// ValidationError indicates the server rejected the request as invalid
	ValidationError = 5
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// FromError maps an error to an exit code based on its error code.
func FromError(err error) int {
	if err == nil {
		return Success
	}

	switch errors.CodeOf(err) {
	case errors.ErrCodeAPIUnauthorized, errors.ErrCodeSessionAnonymous:
		return AuthError
	case errors.ErrCodeAPINetwork:
		return NetworkError
	case errors.ErrCodeAPIValidation, errors.ErrCodeCartQuantity,
		errors.ErrCodeInputRequired, errors.ErrCodeInputInvalid:
		return ValidationError
	default:
		return GeneralError
	}
}
