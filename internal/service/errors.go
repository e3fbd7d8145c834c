package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeUserNotFound        = "user_not_found"
	ErrCodeCardNotFound        = "card_not_found"
	ErrCodeUsernameTaken       = "username_taken"
	ErrCodeInsufficientBalance = "insufficient_balance"
	ErrCodeInvalidCredentials  = "invalid_credentials"
	ErrCodeInvalidAmount       = "invalid_amount"
	ErrCodeSameAccount         = "same_account"
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeInternalError       = "internal_error"
)

func internalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}

func userNotFound(username string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeUserNotFound,
		Message: fmt.Sprintf("user %q not found", username),
	}
}
