// Package emailsend notifies staff that an intake arrived, with the AI summary
// and risk flags in the body.
package emailsend

import (
	"context"
	"time"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/logger"
)

type Service struct {
	config    *Config
	transport Transport
	logger    logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Service{
		config:    config,
		transport: deps.Transport,
		logger:    log,
	}
}

// Execute sends exactly one message. There is no retry; a failure is returned
// to the caller as NOTIFICATION_SEND_FAILED.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	provider := s.transport.Name()

	if err := validateInput(input); err != nil {
		return nil, errors.NewNotificationSendFailedError(provider, err)
	}

	s.logger.Info("Executing email send", map[string]interface{}{
		"to":           input.To,
		"submissionId": input.SubmissionID,
		"provider":     provider,
	})

	message := BuildMessage(
		input.From,
		input.To,
		s.config.Subject(input.SubmissionID),
		s.config.Body(input.SubmissionID, input.Result),
	)

	messageID, err := s.transport.Send(ctx, message)
	if err != nil {
		return nil, errors.NewNotificationSendFailedError(provider, err)
	}

	s.logger.Info("Email sent successfully", map[string]interface{}{
		"submissionId": input.SubmissionID,
		"messageId":    messageID,
	})

	return &Output{
		Success:   true,
		MessageID: messageID,
		Provider:  provider,
		SentAt:    time.Now(),
	}, nil
}
