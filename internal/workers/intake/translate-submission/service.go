// Package translatesubmission asks the generative model for an English summary,
// risk flags and translations of an intake. Output the model did not format as
// requested is kept as a degraded result rather than failing the submission.
package translatesubmission

import (
	"context"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/logger"
)

type Service struct {
	config    *Config
	generator Generator
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
		generator: deps.Generator,
		logger:    log,
	}
}

// Execute makes exactly one generation call.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	prompt, err := BuildPrompt(input.Fields)
	if err != nil {
		return nil, errors.NewTranslationFailedError(err)
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, errors.NewTranslationFailedError(err)
	}

	parsed := s.config.ParseResponse(text)
	if parsed.Outcome == OutcomeDegraded {
		s.logger.Warn("Model output was not valid JSON, keeping raw text", map[string]interface{}{
			"reason":        parsed.Reason,
			"responseChars": len([]rune(text)),
		})
	} else {
		s.logger.Debug("Parsed model output", map[string]interface{}{
			"riskFlags":        parsed.Result.RiskFlags,
			"translatedFields": len(parsed.Result.TranslatedFields),
		})
	}

	return &Output{Result: parsed.Result, Outcome: parsed.Outcome}, nil
}
