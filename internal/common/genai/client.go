// Package genai wraps the Gemini text generation API.
package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client generates text with one fixed model. It holds no per-request state and
// is shared by all requests.
type Client struct {
	client *genai.Client
	model  string
}

// Option adjusts the client configuration before the client is built.
type Option func(*genai.ClientConfig)

// WithBaseURL sends requests to a different API host.
func WithBaseURL(baseURL string) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = baseURL
	}
}

func NewClient(ctx context.Context, apiKey, model string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("GenAI model is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt as a single user turn and returns the concatenated text
// of the first candidate. Only transport and API errors are errors; a response
// with no text, such as one blocked by safety filters, comes back as "".
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", c.model, err)
	}
	return resp.Text(), nil
}
