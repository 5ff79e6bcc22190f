// Package writetranslatedrow appends the AI translation of a submission to the
// translated intake store.
package writetranslatedrow

import (
	"context"
	"time"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/google"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

type Service struct {
	config      *Config
	spreadsheet google.Spreadsheet
	logger      logger.Logger
	now         func() time.Time
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		config:      config,
		spreadsheet: deps.Spreadsheet,
		logger:      log,
		now:         now,
	}
}

func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	translatedAt := s.now().In(s.config.Location).Format(models.SubmittedAtLayout)

	row := []interface{}{
		input.SubmissionID,
		translatedAt,
		input.Result.EnglishSummary,
		input.Result.RiskFlags,
		input.Result.EnglishFull,
		sourceRowCell(input.SourceRow),
	}

	rng := google.A1(s.config.TranslatedSheet, "A:A")
	if err := s.spreadsheet.AppendValues(ctx, rng, [][]interface{}{row}); err != nil {
		return nil, errors.NewSheetsRequestFailedError("append translated intake row", err)
	}

	s.logger.Info("Recorded translation", map[string]interface{}{
		"submissionId": input.SubmissionID,
		"riskFlags":    input.Result.RiskFlags,
	})

	return &Output{TranslatedAt: translatedAt}, nil
}

func sourceRowCell(row *int) interface{} {
	if row == nil {
		return ""
	}
	return *row
}
