package validatepayload

import (
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
)

// Input is the decoded request body, whatever JSON type it turned out to be.
type Input struct {
	Payload interface{}
}

type Output struct {
	Fields models.IntakeFields `json:"fields"`
}

type ServiceDependencies struct {
	Logger logger.Logger
}

// Field groups checked by the validator, in message order.
var (
	requiredPersonal = []string{
		"last_name",
		"first_name",
		"last_name_kana",
		"first_name_kana",
		"email",
	}
	requiredText = []string{
		"digestive_rhythm",
		"skin_condition",
		"mental_state",
		"communication_preference",
		"allergies_text",
		"medical_history_text",
		"female_condition",
	}
	requiredMulti = []string{
		"sleep_quality",
		"tension_areas",
		"sensory_sensitivity",
		"invite_in",
	}
)
