package emailsend

import (
	"context"
	"time"

	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

// Input addresses one staff notification. From and To are the same mailbox in
// the standard deployment.
type Input struct {
	From         string                   `json:"from"`
	To           string                   `json:"to"`
	SubmissionID string                   `json:"submissionId"`
	Result       models.TranslationResult `json:"-"`
}

type Output struct {
	Success   bool      `json:"success"`
	MessageID string    `json:"messageId,omitempty"`
	Provider  string    `json:"provider"`
	SentAt    time.Time `json:"sentAt"`
}

// Transport delivers a complete RFC 822 message.
type Transport interface {
	Name() string
	Send(ctx context.Context, message []byte) (string, error)
}

type ServiceDependencies struct {
	Transport Transport
	Logger    logger.Logger
}
