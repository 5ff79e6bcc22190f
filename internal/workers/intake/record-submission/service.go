// Package recordsubmission appends a new submission to the raw intake store.
// The store is append-only: rows are never rewritten or deleted here.
package recordsubmission

import (
	"context"
	"time"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/google"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"

	"github.com/google/uuid"
)

type Service struct {
	config      *Config
	spreadsheet google.Spreadsheet
	logger      logger.Logger
	newID       func() string
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
	s := &Service{
		config:      config,
		spreadsheet: deps.Spreadsheet,
		logger:      log,
		newID:       deps.NewID,
		now:         deps.Now,
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	submittedAt := s.now().In(s.config.Location)
	sub := models.Submission{
		ID:              s.newID(),
		SubmittedAt:     submittedAt,
		SubmittedAtText: submittedAt.Format(models.SubmittedAtLayout),
		Status:          models.SubmissionStatusNew,
		Fields:          input.Fields,
	}

	rng := google.A1(s.config.RawSheet, "A:A")
	if err := s.spreadsheet.AppendValues(ctx, rng, [][]interface{}{RawRow(sub)}); err != nil {
		return nil, errors.NewSheetsRequestFailedError("append raw intake row", err)
	}

	s.logger.Info("Recorded submission", map[string]interface{}{
		"submissionId": sub.ID,
		"submittedAt":  sub.SubmittedAtText,
	})

	return &Output{Submission: sub}, nil
}

// RawRow lays a submission out in models.RawIntakeHeaders order.
func RawRow(sub models.Submission) []interface{} {
	f := sub.Fields
	return []interface{}{
		sub.ID,
		sub.SubmittedAtText,
		sub.Status,
		f.LastName,
		f.FirstName,
		f.LastNameKana,
		f.FirstNameKana,
		f.Email,
		f.VitalityCell(),
		f.DigestiveRhythm,
		models.JoinList(f.SleepQuality),
		models.JoinList(f.TensionAreas),
		f.SkinCondition,
		f.MentalState,
		models.JoinList(f.SensorySensitivity),
		f.LetGoText,
		models.JoinList(f.InviteIn),
		f.CommunicationPreference,
		f.AllergiesText,
		f.MedicalHistoryText,
		f.FemaleCondition,
	}
}
