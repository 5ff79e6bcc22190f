package translatesubmission

import (
	"bytes"
	"encoding/json"
	"strings"

	"ayurveda-intake/internal/models"
)

const promptHeader = `You are a professional spa intake interpreter for an Ayurvedic-inspired session.
Output MUST be JSON with keys:
- english_summary: <=10 lines, priority: allergies/pregnancy/medical history first
- risk_flags: short comma-separated flags (e.g., "Allergy", "Possible Pregnancy", "Medical History Provided", "None")
- english_full: structured English preserving original sections and bullet style.
- translated_fields: JSON object with English translations for:
  - let_go_text
  - allergies_text
  - medical_history_text
Do not add medical claims.

Input (JSON):
`

// BuildPrompt embeds the normalized fields as indented JSON after the fixed
// instructions.
func BuildPrompt(fields models.IntakeFields) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fields); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	b.Write(buf.Bytes())
	return b.String(), nil
}
