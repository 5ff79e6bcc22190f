package writetranslatedrow

import (
	"time"

	"ayurveda-intake/internal/common/google"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

// Input links a translation to its submission. SourceRow would hold the raw
// store row number; appends do not report it, so it stays nil.
type Input struct {
	SubmissionID string
	Result       models.TranslationResult
	SourceRow    *int
}

type Output struct {
	TranslatedAt string `json:"translatedAt"`
}

type ServiceDependencies struct {
	Spreadsheet google.Spreadsheet
	Logger      logger.Logger
	Now         func() time.Time
}
