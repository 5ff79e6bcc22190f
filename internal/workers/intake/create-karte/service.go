// Package createkarte adds a per-client record tab to the spreadsheet for staff
// to read before the session.
package createkarte

import (
	"context"
	"fmt"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/google"
	"ayurveda-intake/internal/common/logger"
)

type Service struct {
	config      *Config
	spreadsheet google.Spreadsheet
	logger      logger.Logger
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
		config:      config,
		spreadsheet: deps.Spreadsheet,
		logger:      log,
	}
}

// Execute inserts the karte as the first tab and fills it. A title collision
// (same client, same day, same ID prefix) fails the add request.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	title := s.config.Title(input.Submission)

	first := int64(0)
	if err := s.spreadsheet.AddSheets(ctx, []google.NewSheet{{Title: title, Index: &first}}); err != nil {
		return nil, errors.NewSheetsRequestFailedError("add karte sheet", err)
	}

	rows := Rows(input.Submission, input.Result)
	rng := google.A1(title, fmt.Sprintf("A1:B%d", len(rows)))
	if err := s.spreadsheet.UpdateValues(ctx, rng, rows); err != nil {
		return nil, errors.NewSheetsRequestFailedError("write karte", err)
	}

	s.logger.Info("Created karte", map[string]interface{}{
		"submissionId": input.Submission.ID,
		"title":        title,
	})

	return &Output{Title: title, Range: rng}, nil
}
