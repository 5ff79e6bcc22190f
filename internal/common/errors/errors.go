// Package errors provides the standardized error taxonomy of the intake pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigurationMissing   ErrorCode = "CONFIGURATION_MISSING"
	ErrCodeValidationFailed       ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidRequestBody     ErrorCode = "INVALID_REQUEST_BODY"
	ErrCodeRequestBodyTooLarge    ErrorCode = "REQUEST_BODY_TOO_LARGE"
	ErrCodeCredentialsUnavailable ErrorCode = "CREDENTIALS_UNAVAILABLE"
	ErrCodeSheetsRequestFailed    ErrorCode = "SHEETS_REQUEST_FAILED"
	ErrCodeTranslationFailed      ErrorCode = "TRANSLATION_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error. Message is safe to
// return to the caller; Details may carry transport specifics and is only logged.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// ==========================
// Error Constructors
// ==========================

// NewConfigurationMissingError reports a required identifier or credential that
// is absent. The message is surfaced verbatim.
func NewConfigurationMissingError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigurationMissing,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError joins the validator messages with "; ".
func NewValidationFailedError(messages []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   strings.Join(messages, "; "),
		Retryable: false,
		Metadata:  map[string]interface{}{"errorCount": len(messages)},
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidRequestBodyError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequestBody,
		Message:   "invalid JSON body",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewRequestBodyTooLargeError(limit int64, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestBodyTooLarge,
		Message:   "request body too large",
		Details:   err.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"limitBytes": limit},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewCredentialsUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCredentialsUnavailable,
		Message:   "service account credentials unavailable",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewSheetsRequestFailedError wraps a spreadsheet transport/auth/quota failure.
// operation names the step, e.g. "append raw intake row".
func NewSheetsRequestFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSheetsRequestFailed,
		Message:   fmt.Sprintf("spreadsheet request failed: %s", operation),
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"operation": operation},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewTranslationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTranslationFailed,
		Message:   "translation service request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewNotificationSendFailedError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "failed to send staff notification",
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"provider": provider},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// Utility Functions
// ==========================

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// CodeOf returns the error code of err, INTERNAL_ERROR for foreign errors.
func CodeOf(err error) ErrorCode {
	return Normalize(err).Code
}

// HTTPStatus maps an error code to the response status of the submit endpoint.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeInvalidRequestBody:
		return http.StatusBadRequest
	case ErrCodeRequestBodyTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeConfigurationMissing, ErrCodeCredentialsUnavailable:
		return "CONFIGURATION"
	case ErrCodeValidationFailed, ErrCodeInvalidRequestBody, ErrCodeRequestBodyTooLarge:
		return "VALIDATION"
	case ErrCodeSheetsRequestFailed, ErrCodeTranslationFailed, ErrCodeNotificationSendFailed:
		return "EXTERNAL_SERVICE"
	default:
		return "INTERNAL"
	}
}
