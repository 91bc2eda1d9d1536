package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
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

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeDataUnavailable  = "DATA_UNAVAILABLE"
	CodeNoComparableData = "NO_COMPARABLE_DATA"
	CodeUnknownArea      = "UNKNOWN_AREA"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeModelInference   = "MODEL_INFERENCE_FAILURE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// HTTPStatus maps an error to the status code returned by the API layer.
// Model inference failures are recovered by the statistical fallback before
// reaching a handler, so they map to 500 only as a safety net.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeInvalidInput, CodeNoComparableData:
		return http.StatusBadRequest
	case CodeUnknownArea:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DataUnavailable(message string) *AppError {
	return New(CodeDataUnavailable, message)
}

func NoComparableData(message string) *AppError {
	return New(CodeNoComparableData, message)
}

func UnknownArea(area string) *AppError {
	return New(CodeUnknownArea, fmt.Sprintf("No data for this area: %s", area))
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func ModelInference(cause error) *AppError {
	return &AppError{
		Code:    CodeModelInference,
		Message: "model inference failed",
		Cause:   cause,
	}
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
