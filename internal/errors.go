package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeAuthentication ErrorType = "AUTHENTICATION_FAILURE"
	ErrorTypeAuthorization  ErrorType = "AUTHORIZATION_FAILURE"
	ErrorTypeValidation     ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound       ErrorType = "NOT_FOUND"
	ErrorTypeConflict       ErrorType = "CONFLICT"
	ErrorTypeStore          ErrorType = "STORE_FAILURE"
)

type ErrorCode string

const (
	ErrCodeUnknownEmployeeCode ErrorCode = "UNKNOWN_EMPLOYEE_CODE"
	ErrCodeInvalidPassword     ErrorCode = "INVALID_PASSWORD"
	ErrCodeLoginLocked         ErrorCode = "LOGIN_LOCKED"

	ErrCodeNotAuthenticated ErrorCode = "NOT_AUTHENTICATED"
	ErrCodeNotAuthorized    ErrorCode = "NOT_AUTHORIZED"

	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeKYCRecordNotFound ErrorCode = "KYC_RECORD_NOT_FOUND"
	ErrCodeAlreadySubmitted  ErrorCode = "KYC_ALREADY_SUBMITTED"

	ErrCodeMissingEmployeeCode ErrorCode = "MISSING_EMPLOYEE_CODE"
	ErrCodeMissingPassword     ErrorCode = "MISSING_PASSWORD"

	ErrCodeStoreFailure ErrorCode = "STORE_FAILURE"
)

type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewAuthenticationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeAuthentication,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewAuthorizationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeAuthorization,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

// NewStoreError wraps a data-store failure. The cause is for server-side logs
// only; the message is what a client may see.
func NewStoreError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeStore,
		Code:       ErrCodeStoreFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrUnknownEmployeeCode = NewAuthenticationError("incorrect employee code", ErrCodeUnknownEmployeeCode)
	ErrInvalidPassword     = NewAuthenticationError("incorrect password", ErrCodeInvalidPassword)
	ErrLoginLocked         = NewAuthenticationError("your KYC form has already been submitted and you are not allowed to log in", ErrCodeLoginLocked)

	ErrNotAuthenticated = NewAuthorizationError("you are not authorized to access this page", ErrCodeNotAuthenticated)
	ErrNotAuthorized    = NewAuthorizationError("you are not authorized to access this page", ErrCodeNotAuthorized)

	ErrUserNotFound      = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrKYCRecordNotFound = NewNotFoundError("KYC record not found", ErrCodeKYCRecordNotFound)
	ErrAlreadySubmitted  = NewConflictError("you have already submitted the KYC form", ErrCodeAlreadySubmitted)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
