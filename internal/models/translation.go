// internal/models/translation.go
package models

// Keys of TranslationResult.TranslatedFields.
const (
	TranslatedLetGoText          = "let_go_text"
	TranslatedAllergiesText      = "allergies_text"
	TranslatedMedicalHistoryText = "medical_history_text"
)

// RiskFlagsMalformedOutput marks a translation whose model output could not be
// parsed. Staff review these rows by hand.
const RiskFlagsMalformedOutput = "CHECK_OUTPUT_FORMAT"

// TranslationResult is the AI-derived English rendering of a Submission.
type TranslationResult struct {
	EnglishSummary   string            `json:"english_summary"`
	RiskFlags        string            `json:"risk_flags"`
	EnglishFull      string            `json:"english_full"`
	TranslatedFields map[string]string `json:"translated_fields"`
}

// Translated returns the English variant of a free-text field, or fallback when
// the model did not provide one.
func (r TranslationResult) Translated(key, fallback string) string {
	if v := r.TranslatedFields[key]; v != "" {
		return v
	}
	return fallback
}
