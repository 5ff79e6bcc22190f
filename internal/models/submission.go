// internal/models/submission.go
package models

import (
	"strconv"
	"strings"
	"time"
)

// SubmissionStatusNew is the only status this service writes; staff move rows on
// from there by hand.
const SubmissionStatusNew = "NEW"

// SubmittedAtLayout renders timestamps in the raw and translated stores.
const SubmittedAtLayout = "2006/01/02 15:04:05"

// Submission is one completed intake form instance. It is built once from a
// validated payload and never mutated afterwards.
type Submission struct {
	ID              string       `json:"submission_id"`
	SubmittedAt     time.Time    `json:"-"`
	SubmittedAtText string       `json:"submitted_at"`
	Status          string       `json:"status"`
	Fields          IntakeFields `json:"fields"`
}

// IntakeFields is the strongly typed form content. Field order and JSON keys
// follow the payload the wizard posts.
type IntakeFields struct {
	LastName                string   `json:"last_name"`
	FirstName               string   `json:"first_name"`
	LastNameKana            string   `json:"last_name_kana"`
	FirstNameKana           string   `json:"first_name_kana"`
	Email                   string   `json:"email"`
	Vitality                *float64 `json:"vitality_1_10"`
	DigestiveRhythm         string   `json:"digestive_rhythm"`
	SleepQuality            []string `json:"sleep_quality"`
	TensionAreas            []string `json:"tension_areas"`
	SkinCondition           string   `json:"skin_condition"`
	MentalState             string   `json:"mental_state"`
	SensorySensitivity      []string `json:"sensory_sensitivity"`
	LetGoText               string   `json:"let_go_text"`
	InviteIn                []string `json:"invite_in"`
	CommunicationPreference string   `json:"communication_preference"`
	AllergiesText           string   `json:"allergies_text"`
	MedicalHistoryText      string   `json:"medical_history_text"`
	FemaleCondition         string   `json:"female_condition"`
}

// FullName is the display name used in karte titles: last name then first name,
// no separator.
func (f IntakeFields) FullName() string {
	return f.LastName + f.FirstName
}

// VitalityText renders the vitality score, or "" when it is absent.
func (f IntakeFields) VitalityText() string {
	if f.Vitality == nil {
		return ""
	}
	return strconv.FormatFloat(*f.Vitality, 'f', -1, 64)
}

// VitalityCell is the spreadsheet cell value for the vitality score: the number
// itself, or "" when it is absent.
func (f IntakeFields) VitalityCell() interface{} {
	if f.Vitality == nil {
		return ""
	}
	return *f.Vitality
}

// JoinList renders a multi-choice answer for a single cell.
func JoinList(values []string) string {
	return strings.Join(values, ", ")
}
