package recordsubmission

import (
	"time"

	"ayurveda-intake/internal/common/google"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

type Input struct {
	Fields models.IntakeFields
}

type Output struct {
	Submission models.Submission `json:"submission"`
}

// ServiceDependencies carries the raw-store client. NewID and Now default to
// random UUIDs and the wall clock.
type ServiceDependencies struct {
	Spreadsheet google.Spreadsheet
	Logger      logger.Logger
	NewID       func() string
	Now         func() time.Time
}
