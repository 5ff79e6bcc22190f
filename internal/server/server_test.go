package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ayurveda-intake/internal/common/config"
	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Submitter
// ==========================

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, raw interface{}) (*pipeline.Result, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Result), args.Error(1)
}

// ==========================
// Test Helpers
// ==========================

func serverConfig(staticDir string) config.ServerConfig {
	return config.ServerConfig{
		Port:         8081,
		BasePath:     "/counselling/ayurveda",
		MaxBodyBytes: 1 << 20,
		StaticDir:    staticDir,
	}
}

func newTestServer(t *testing.T, sub Submitter, staticDir string) *httptest.Server {
	t.Helper()
	router := NewRouter(Dependencies{
		Config:    serverConfig(staticDir),
		Submitter: sub,
		Logger:    logger.NewTestLogger(t),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ==========================
// Submit Endpoint
// ==========================

func TestSubmit_Success(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, mock.MatchedBy(func(raw interface{}) bool {
		m, ok := raw.(map[string]interface{})
		return ok && m["last_name"] == "山田"
	})).Return(&pipeline.Result{SubmissionID: "abc-123", State: pipeline.StateAcknowledged}, nil).Twice()

	srv := newTestServer(t, sub, t.TempDir())

	for _, path := range []string{"/api/submit", "/counselling/ayurveda/api/submit"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(`{"last_name":"山田"}`))
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.Equal(t, map[string]interface{}{"ok": true, "submission_id": "abc-123"}, decodeJSON(t, resp))
		})
	}
	sub.AssertExpectations(t)
}

func TestSubmit_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "validation",
			err:        errors.NewValidationFailedError([]string{"email is invalid", "let_go_text is required"}),
			wantStatus: http.StatusBadRequest,
			wantError:  "email is invalid; let_go_text is required",
		},
		{
			name:       "configuration",
			err:        errors.NewConfigurationMissingError("Missing SPREADSHEET_ID"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Missing SPREADSHEET_ID",
		},
		{
			name:       "external service",
			err:        errors.NewSheetsRequestFailedError("append raw intake row", io.ErrUnexpectedEOF),
			wantStatus: http.StatusInternalServerError,
			wantError:  "spreadsheet request failed: append raw intake row",
		},
		{
			name:       "foreign error",
			err:        io.ErrClosedPipe,
			wantStatus: http.StatusInternalServerError,
			wantError:  "unexpected error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := new(MockSubmitter)
			sub.On("Submit", mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			srv := newTestServer(t, sub, t.TempDir())

			resp, err := http.Post(srv.URL+"/api/submit", "application/json", strings.NewReader(`{}`))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, map[string]interface{}{"ok": false, "error": tt.wantError}, decodeJSON(t, resp))
		})
	}
}

func TestSubmit_InvalidJSON(t *testing.T) {
	sub := new(MockSubmitter)
	srv := newTestServer(t, sub, t.TempDir())

	resp, err := http.Post(srv.URL+"/api/submit", "application/json", strings.NewReader(`{"last_name":`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"ok": false, "error": "invalid JSON body"}, decodeJSON(t, resp))
	sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmit_BodyTooLarge(t *testing.T) {
	sub := new(MockSubmitter)
	router := NewRouter(Dependencies{
		Config:    serverConfig(t.TempDir()),
		Submitter: sub,
		Logger:    logger.NewTestLogger(t),
	})

	big := `{"let_go_text":"` + strings.Repeat("x", 1<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(big))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"request body too large"}`, rec.Body.String())
	sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmit_TrailingDataRejected(t *testing.T) {
	bodies := map[string]string{
		"garbage":       `{"last_name":"x"} garbage`,
		"second value":  `{"last_name":"x"} {"last_name":"y"}`,
		"stray closing": `{"last_name":"x"}}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			sub := new(MockSubmitter)
			srv := newTestServer(t, sub, t.TempDir())

			resp, err := http.Post(srv.URL+"/api/submit", "application/json", strings.NewReader(body))
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, map[string]interface{}{"ok": false, "error": "invalid JSON body"}, decodeJSON(t, resp))
			sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmit_TrailingWhitespaceAccepted(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, map[string]interface{}{"last_name": "x"}).
		Return(&pipeline.Result{SubmissionID: "id-1"}, nil).Once()
	srv := newTestServer(t, sub, t.TempDir())

	resp, err := http.Post(srv.URL+"/api/submit", "application/json", strings.NewReader("{\"last_name\":\"x\"}\n  \n"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"ok": true, "submission_id": "id-1"}, decodeJSON(t, resp))
	sub.AssertExpectations(t)
}

func TestSubmit_EmptyBodyIsEmptyObject(t *testing.T) {
	sub := new(MockSubmitter)
	sub.On("Submit", mock.Anything, map[string]interface{}{}).
		Return(nil, errors.NewValidationFailedError([]string{"last_name is required"})).Once()
	srv := newTestServer(t, sub, t.TempDir())

	resp, err := http.Post(srv.URL+"/api/submit", "application/json", http.NoBody)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	sub.AssertExpectations(t)
}

// ==========================
// Health, Metrics, Static
// ==========================

func TestHealth(t *testing.T) {
	srv := newTestServer(t, new(MockSubmitter), t.TempDir())

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"ok": true}, decodeJSON(t, resp))
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t, new(MockSubmitter), t.TempDir())

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "go_goroutines")
}

func TestStatic_NoBuild(t *testing.T) {
	srv := newTestServer(t, new(MockSubmitter), t.TempDir())

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "API server running (no dist build found).", readBody(t, resp))
}

func TestStatic_ServesBuild(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>wizard</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	srv := newTestServer(t, new(MockSubmitter), dir)

	tests := []struct {
		path string
		want string
	}{
		{"/", "<html>wizard</html>"},
		{"/assets/app.js", "console.log(1)"},
		{"/some/client/route", "<html>wizard</html>"},
		{"/counselling/ayurveda/", "<html>wizard</html>"},
		{"/counselling/ayurveda/assets/app.js", "console.log(1)"},
		{"/counselling/ayurveda/step/3", "<html>wizard</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, readBody(t, resp))
		})
	}
}
