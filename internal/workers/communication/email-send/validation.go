package emailsend

import (
	"fmt"

	"ayurveda-intake/internal/common/validation"
)

var inputSchema = validation.MustCompile(map[string]interface{}{
	"$schema":  "http://json-schema.org/draft-07/schema#",
	"type":     "object",
	"required": []interface{}{"from", "to", "submissionId"},
	"properties": map[string]interface{}{
		"from":         map[string]interface{}{"type": "string", "format": "email"},
		"to":           map[string]interface{}{"type": "string", "format": "email"},
		"submissionId": map[string]interface{}{"type": "string", "minLength": 1},
	},
})

// validateInput rejects messages that could never be delivered.
func validateInput(input *Input) error {
	result := inputSchema.Validate(input)
	if result.Valid {
		return nil
	}
	return fmt.Errorf("invalid notification input: %v", result.GetErrorMessages())
}
