package testutil

import (
	"context"
	"sync"
)

// FakeGenerator returns a canned model response and records the prompts.
type FakeGenerator struct {
	mu       sync.Mutex
	Response string
	Err      error
	prompts  []string
}

func (g *FakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}

func (g *FakeGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

// FakeTransport captures outgoing mail messages.
type FakeTransport struct {
	mu       sync.Mutex
	Err      error
	messages [][]byte
}

func (t *FakeTransport) Name() string { return "fake" }

func (t *FakeTransport) Send(ctx context.Context, message []byte) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return "", t.Err
	}
	t.messages = append(t.messages, append([]byte(nil), message...))
	return "fake-message-id", nil
}

func (t *FakeTransport) Messages() [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([][]byte(nil), t.messages...)
}
