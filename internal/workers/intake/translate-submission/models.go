package translatesubmission

import (
	"context"

	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

// Generator produces model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Input struct {
	Fields models.IntakeFields
}

// Outcome tells how a model response was interpreted.
type Outcome int

const (
	// OutcomeStructured means the response contained a parseable JSON object.
	OutcomeStructured Outcome = iota
	// OutcomeDegraded means the raw text was kept and flagged for review.
	OutcomeDegraded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStructured:
		return "structured"
	case OutcomeDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Parsed is the result of interpreting one model response. Reason is set for
// degraded outcomes only.
type Parsed struct {
	Outcome Outcome
	Result  models.TranslationResult
	Reason  string
}

type Output struct {
	Result  models.TranslationResult `json:"result"`
	Outcome Outcome                  `json:"-"`
}

type ServiceDependencies struct {
	Generator Generator
	Logger    logger.Logger
}
