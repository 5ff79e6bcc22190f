package createkarte

import (
	"ayurveda-intake/internal/common/google"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

type Input struct {
	Submission models.Submission
	Result     models.TranslationResult
}

type Output struct {
	Title string `json:"title"`
	Range string `json:"range"`
}

type ServiceDependencies struct {
	Spreadsheet google.Spreadsheet
	Logger      logger.Logger
}
