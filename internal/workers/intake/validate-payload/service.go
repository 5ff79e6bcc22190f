// Package validatepayload checks a submitted intake form and converts it into
// typed fields. Nothing downstream sees the untyped payload.
package validatepayload

import (
	"context"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

type Service struct {
	config *Config
	logger logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Service{config: config, logger: log}
}

// Execute validates input and returns the normalized fields, or a
// VALIDATION_FAILED error carrying every message.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	msgs := s.Validate(input.Payload)
	if len(msgs) > 0 {
		s.logger.Warn("Intake payload rejected", map[string]interface{}{
			"errorCount": len(msgs),
			"errors":     msgs,
		})
		return nil, errors.NewValidationFailedError(msgs)
	}

	fields, _ := asPayload(input.Payload)
	return &Output{Fields: Normalize(fields)}, nil
}

// Validate returns the ordered list of problems with raw. An empty list means
// the payload is acceptable.
func (s *Service) Validate(raw interface{}) []string {
	p, ok := asPayload(raw)
	if !ok {
		return []string{msgInvalidPayload}
	}
	return s.config.check(p)
}

// Validate checks raw with the default rules.
func Validate(raw interface{}) []string {
	return NewService(ServiceDependencies{}, DefaultConfig()).Validate(raw)
}

// Normalize converts an accepted payload into IntakeFields.
func Normalize(p models.Payload) models.IntakeFields {
	f := models.IntakeFields{
		LastName:                p.SafeString("last_name"),
		FirstName:               p.SafeString("first_name"),
		LastNameKana:            p.SafeString("last_name_kana"),
		FirstNameKana:           p.SafeString("first_name_kana"),
		Email:                   p.SafeString("email"),
		DigestiveRhythm:         p.SafeString("digestive_rhythm"),
		SleepQuality:            p.SafeList("sleep_quality"),
		TensionAreas:            p.SafeList("tension_areas"),
		SkinCondition:           p.SafeString("skin_condition"),
		MentalState:             p.SafeString("mental_state"),
		SensorySensitivity:      p.SafeList("sensory_sensitivity"),
		LetGoText:               p.SafeString("let_go_text"),
		InviteIn:                p.SafeList("invite_in"),
		CommunicationPreference: p.SafeString("communication_preference"),
		AllergiesText:           p.SafeString("allergies_text"),
		MedicalHistoryText:      p.SafeString("medical_history_text"),
		FemaleCondition:         p.SafeString("female_condition"),
	}
	if v, ok := p.SafeNumber("vitality_1_10"); ok {
		f.Vitality = &v
	}
	return f
}
