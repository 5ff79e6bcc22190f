package ensureschema

import (
	"ayurveda-intake/internal/common/google"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

type Output struct {
	CreatedSheets  []string `json:"createdSheets"`
	RewrittenHeads []string `json:"rewrittenHeaders"`
}

type ServiceDependencies struct {
	Spreadsheet google.Spreadsheet
	Logger      logger.Logger
}

// Schemas lists the canonical tabs in the order they are ensured.
func (c *Config) Schemas() []models.SheetSchema {
	return []models.SheetSchema{
		{Title: c.RawSheet, Headers: models.RawIntakeHeaders},
		{Title: c.TranslatedSheet, Headers: models.TranslatedIntakeHeaders},
	}
}
