// internal/models/sheets.go
package models

// RawIntakeHeaders is the canonical header row of the raw-intake store. Dashboards
// built on the same spreadsheet read columns by this order.
var RawIntakeHeaders = []string{
	"submission_id", "submitted_at", "status",
	"last_name", "first_name", "last_name_kana", "first_name_kana", "email",
	"vitality_1_10", "digestive_rhythm", "sleep_quality", "tension_areas", "skin_condition",
	"mental_state", "sensory_sensitivity",
	"let_go_text", "invite_in", "communication_preference",
	"allergies_text", "medical_history_text", "female_condition",
}

// TranslatedIntakeHeaders is the canonical header row of the translated-intake store.
var TranslatedIntakeHeaders = []string{
	"submission_id", "translated_at",
	"english_summary", "risk_flags", "english_full",
	"source_row",
}

// SheetSchema pairs a tab title with its canonical header row.
type SheetSchema struct {
	Title   string
	Headers []string
}
