package emailsend

import (
	"context"
)

const (
	ProviderGmail = "gmail"
	ProviderSES   = "ses"
)

// RawSender is implemented by google.GmailClient.
type RawSender interface {
	SendRaw(ctx context.Context, raw string) (string, error)
}

// GmailTransport sends as the delegated mailbox.
type GmailTransport struct {
	sender RawSender
}

func NewGmailTransport(sender RawSender) *GmailTransport {
	return &GmailTransport{sender: sender}
}

func (t *GmailTransport) Name() string { return ProviderGmail }

func (t *GmailTransport) Send(ctx context.Context, message []byte) (string, error) {
	return t.sender.SendRaw(ctx, EncodeRaw(message))
}

// RawEmailSender is implemented by aws.SESClient.
type RawEmailSender interface {
	SendRawEmail(ctx context.Context, data []byte) (string, error)
}

// SESTransport sends through Amazon SES. The From address must be a verified
// SES identity.
type SESTransport struct {
	sender RawEmailSender
}

func NewSESTransport(sender RawEmailSender) *SESTransport {
	return &SESTransport{sender: sender}
}

func (t *SESTransport) Name() string { return ProviderSES }

func (t *SESTransport) Send(ctx context.Context, message []byte) (string, error) {
	return t.sender.SendRawEmail(ctx, message)
}
