package genai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, "", "gemini-3-flash-preview")
	assert.EqualError(t, err, "GenAI API key is required")

	_, err = NewClient(ctx, "key", "")
	assert.EqualError(t, err, "GenAI model is required")

	c, err := NewClient(ctx, "key", "gemini-3-flash-preview")
	require.NoError(t, err)
	assert.Equal(t, "gemini-3-flash-preview", c.Model())
}

// geminiServer answers every request with status and body.
func geminiServer(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), "key", "gemini-test", WithBaseURL(srv.URL))
	require.NoError(t, err)
	return c
}

func TestGenerate_ReturnsText(t *testing.T) {
	c := geminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"risk_flags\":\"None\"}"}]}}]}`)

	text, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"risk_flags":"None"}`, text)
}

func TestGenerate_EmptyResponseIsNotAnError(t *testing.T) {
	tests := map[string]string{
		"empty part":    `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`,
		"no candidates": `{"promptFeedback":{"blockReason":"SAFETY"}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			c := geminiServer(t, http.StatusOK, body)

			text, err := c.Generate(context.Background(), "prompt")
			require.NoError(t, err)
			assert.Empty(t, text)
		})
	}
}

func TestGenerate_APIErrorIsReturned(t *testing.T) {
	c := geminiServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)

	_, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate content with gemini-test")
}
