// internal/common/google/gmail.go
package google

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailClient sends pre-encoded messages as the delegated user.
type GmailClient struct {
	service *gmail.Service
}

func NewGmailClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*GmailClient, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return &GmailClient{service: svc}, nil
}

// SendRaw submits a base64url encoded RFC 822 message and returns its Gmail ID.
func (c *GmailClient) SendRaw(ctx context.Context, raw string) (string, error) {
	msg, err := c.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return msg.Id, nil
}
