package validatepayload

import (
	"fmt"
	"strings"

	"ayurveda-intake/internal/common/validation"
	"ayurveda-intake/internal/models"
)

const msgInvalidPayload = "Invalid payload"

var envelopeSchema = validation.MustCompile(map[string]interface{}{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type":    "object",
})

// asPayload accepts only a JSON object.
func asPayload(raw interface{}) (models.Payload, bool) {
	if raw == nil || !envelopeSchema.Validate(raw).Valid {
		return nil, false
	}
	switch p := raw.(type) {
	case map[string]interface{}:
		return models.Payload(p), true
	case models.Payload:
		return p, true
	default:
		return nil, false
	}
}

// check runs every rule and accumulates all messages.
func (c *Config) check(p models.Payload) []string {
	var errs []string

	for _, key := range requiredPersonal {
		if p.SafeString(key) == "" {
			errs = append(errs, fmt.Sprintf("%s is required", key))
		}
	}
	if email := p.SafeString("email"); email != "" && !validation.ValidateEmail(email) {
		errs = append(errs, "email is invalid")
	}

	if v, ok := p.SafeNumber("vitality_1_10"); !ok || v < c.MinVitality || v > c.MaxVitality {
		errs = append(errs, "vitality_1_10 out of range")
	}

	for _, key := range requiredText {
		if p.SafeString(key) == "" {
			errs = append(errs, fmt.Sprintf("%s is required", key))
		}
	}

	for _, key := range requiredMulti {
		values := p.SafeList(key)
		if len(values) == 0 {
			errs = append(errs, fmt.Sprintf("%s requires at least one value", key))
		}
		if key == "sensory_sensitivity" && len(values) > 1 && c.containsSentinel(values) {
			errs = append(errs, fmt.Sprintf("sensory_sensitivity: %s must be exclusive", c.NoneSentinel))
		}
	}

	if p.SafeString("let_go_text") == "" {
		errs = append(errs, "let_go_text is required")
	}

	return errs
}

func (c *Config) containsSentinel(values []string) bool {
	for _, v := range values {
		if strings.EqualFold(v, c.NoneSentinel) {
			return true
		}
	}
	return false
}
