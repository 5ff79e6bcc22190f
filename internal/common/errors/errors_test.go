package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Constructors
// ==========================

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("googleapi: Error 429: quota exceeded")

	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		message   string
		retryable bool
	}{
		{"configuration", NewConfigurationMissingError("Missing SPREADSHEET_ID"), ErrCodeConfigurationMissing, "Missing SPREADSHEET_ID", false},
		{"validation", NewValidationFailedError([]string{"first_name is required", "email is invalid"}), ErrCodeValidationFailed, "first_name is required; email is invalid", false},
		{"body", NewInvalidRequestBodyError(cause), ErrCodeInvalidRequestBody, "invalid JSON body", false},
		{"too large", NewRequestBodyTooLargeError(1<<20, cause), ErrCodeRequestBodyTooLarge, "request body too large", false},
		{"credentials", NewCredentialsUnavailableError(cause), ErrCodeCredentialsUnavailable, "service account credentials unavailable", false},
		{"sheets", NewSheetsRequestFailedError("append raw intake row", cause), ErrCodeSheetsRequestFailed, "spreadsheet request failed: append raw intake row", true},
		{"translation", NewTranslationFailedError(cause), ErrCodeTranslationFailed, "translation service request failed", true},
		{"notification", NewNotificationSendFailedError("gmail", cause), ErrCodeNotificationSendFailed, "failed to send staff notification", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.code))
		})
	}
}

func TestWrappedCauseIsReachable(t *testing.T) {
	sentinel := stderrors.New("token expired")
	err := NewSheetsRequestFailedError("read spreadsheet metadata", sentinel)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "token expired", err.Details)
	assert.Equal(t, "read spreadsheet metadata", err.Metadata["operation"])
}

// ==========================
// Utility Functions
// ==========================

func TestNormalize(t *testing.T) {
	std := NewTranslationFailedError(stderrors.New("boom"))
	assert.Same(t, std, Normalize(std))
	assert.Same(t, std, Normalize(fmt.Errorf("step: %w", std)))

	foreign := Normalize(stderrors.New("nil map"))
	assert.Equal(t, ErrCodeInternal, foreign.Code)
	assert.Equal(t, "unexpected error", foreign.Message)
	assert.Equal(t, "nil map", foreign.Details)
}

func TestHTTPStatusAndCategory(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeValidationFailed))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeInvalidRequestBody))
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(ErrCodeRequestBodyTooLarge))
	for _, code := range []ErrorCode{
		ErrCodeConfigurationMissing, ErrCodeCredentialsUnavailable, ErrCodeSheetsRequestFailed,
		ErrCodeTranslationFailed, ErrCodeNotificationSendFailed, ErrCodeInternal,
	} {
		assert.Equal(t, http.StatusInternalServerError, HTTPStatus(code), code)
	}

	assert.Equal(t, "CONFIGURATION", GetErrorCategory(ErrCodeCredentialsUnavailable))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidRequestBody))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeRequestBodyTooLarge))
	assert.Equal(t, "EXTERNAL_SERVICE", GetErrorCategory(ErrCodeNotificationSendFailed))
	assert.Equal(t, "INTERNAL", GetErrorCategory(ErrCodeInternal))
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("x")))
}

// ==========================
// Error Handler
// ==========================

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{"error", msg, fields})
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{"warn", msg, fields})
}

func TestErrorHandler_WriteError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		message   string
		logLevel  string
		hiddenTxt string
	}{
		{
			name:     "validation is a 400",
			err:      NewValidationFailedError([]string{"email is invalid"}),
			status:   http.StatusBadRequest,
			message:  "email is invalid",
			logLevel: "warn",
		},
		{
			name:      "external failure hides details",
			err:       NewNotificationSendFailedError("ses", stderrors.New("MessageRejected: address not verified")),
			status:    http.StatusInternalServerError,
			message:   "failed to send staff notification",
			logLevel:  "error",
			hiddenTxt: "MessageRejected",
		},
		{
			name:     "foreign error",
			err:      stderrors.New("unexpected nil"),
			status:   http.StatusInternalServerError,
			message:  "unexpected error",
			logLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			h := NewErrorHandler(log)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)

			h.WriteError(rec, req, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["ok"])
			assert.Equal(t, tt.message, body["error"])
			if tt.hiddenTxt != "" {
				assert.NotContains(t, rec.Body.String(), tt.hiddenTxt)
			}

			require.Len(t, log.entries, 1)
			assert.Equal(t, tt.logLevel, log.entries[0].level)
			assert.Equal(t, "/api/submit", log.entries[0].fields["path"])
		})
	}
}

func TestErrorHandler_LogsMetadata(t *testing.T) {
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	h.WriteError(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil),
		NewNotificationSendFailedError("gmail", stderrors.New("403")))

	require.Len(t, log.entries, 1)
	assert.Equal(t, "gmail", log.entries[0].fields["provider"])
	assert.Equal(t, "403", log.entries[0].fields["details"])
	assert.Equal(t, "EXTERNAL_SERVICE", log.entries[0].fields["errorCategory"])
}
