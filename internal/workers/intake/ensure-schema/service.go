// Package ensureschema makes sure the raw and translated tabs exist and carry
// their canonical header rows.
//
// The check-then-create sequence is not atomic. Two submissions racing on a
// spreadsheet that lacks a tab can both try to add it; the loser fails with a
// spreadsheet error. Nothing serializes this because it only happens once per
// spreadsheet.
package ensureschema

import (
	"context"
	"fmt"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/google"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
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

// Execute is idempotent: a second run against an up-to-date spreadsheet only
// reads.
func (s *Service) Execute(ctx context.Context) (*Output, error) {
	out := &Output{}
	schemas := s.config.Schemas()

	titles, err := s.spreadsheet.SheetTitles(ctx)
	if err != nil {
		return nil, errors.NewSheetsRequestFailedError("read spreadsheet metadata", err)
	}

	existing := make(map[string]bool, len(titles))
	for _, t := range titles {
		existing[t] = true
	}

	var missing []google.NewSheet
	for _, schema := range schemas {
		if !existing[schema.Title] {
			missing = append(missing, google.NewSheet{Title: schema.Title})
			out.CreatedSheets = append(out.CreatedSheets, schema.Title)
		}
	}
	if len(missing) > 0 {
		if err := s.spreadsheet.AddSheets(ctx, missing); err != nil {
			return nil, errors.NewSheetsRequestFailedError("add intake sheets", err)
		}
		s.logger.Info("Created intake sheets", map[string]interface{}{
			"sheets": out.CreatedSheets,
		})
	}

	for _, schema := range schemas {
		rewritten, err := s.ensureHeaderRow(ctx, schema)
		if err != nil {
			return nil, err
		}
		if rewritten {
			out.RewrittenHeads = append(out.RewrittenHeads, schema.Title)
		}
	}

	return out, nil
}

func (s *Service) ensureHeaderRow(ctx context.Context, schema models.SheetSchema) (bool, error) {
	rng := HeaderRange(schema)

	rows, err := s.spreadsheet.GetValues(ctx, rng)
	if err != nil {
		return false, errors.NewSheetsRequestFailedError(fmt.Sprintf("read %s header", schema.Title), err)
	}

	var current []interface{}
	if len(rows) > 0 {
		current = rows[0]
	}
	if headerMatches(current, schema.Headers) {
		return false, nil
	}

	header := make([]interface{}, len(schema.Headers))
	for i, h := range schema.Headers {
		header[i] = h
	}
	if err := s.spreadsheet.UpdateValues(ctx, rng, [][]interface{}{header}); err != nil {
		return false, errors.NewSheetsRequestFailedError(fmt.Sprintf("write %s header", schema.Title), err)
	}

	s.logger.Info("Rewrote sheet header", map[string]interface{}{
		"sheet":   schema.Title,
		"columns": len(schema.Headers),
	})
	return true, nil
}

// HeaderRange addresses row 1 across exactly the schema's columns.
func HeaderRange(schema models.SheetSchema) string {
	return google.A1(schema.Title, "A1:"+google.ColumnLetter(len(schema.Headers))+"1")
}

// headerMatches compares cell by cell. Missing cells read as "", and cells
// past the canonical width are ignored.
func headerMatches(current []interface{}, want []string) bool {
	for i, h := range want {
		cell := ""
		if i < len(current) && current[i] != nil {
			cell = fmt.Sprint(current[i])
		}
		if cell != h {
			return false
		}
	}
	return true
}
