package createkarte

import (
	"strings"

	"ayurveda-intake/internal/models"
)

const karteSeparator = "---"

var forbiddenTitleChars = strings.NewReplacer(
	"[", "", "]", "", "*", "", "?", "", ":", "", "/", "", `\`, "",
)

// Title builds the karte tab name: <date>_<last><first>様_<id prefix>. Characters
// the spreadsheet rejects in tab names are removed.
func (c *Config) Title(sub models.Submission) string {
	suffix := sub.ID
	if len(suffix) > c.IDSuffixLength {
		suffix = suffix[:c.IDSuffixLength]
	}
	base := sub.SubmittedAt.Format("2006-01-02") + "_" + sub.Fields.FullName() + "様_" + suffix

	title := forbiddenTitleChars.Replace(base)
	if r := []rune(title); len(r) > c.MaxTitleLength {
		title = string(r[:c.MaxTitleLength])
	}
	if title == "" {
		return c.FallbackTitle
	}
	return title
}

// submittedAtLabel names the zone the timestamp text was formatted in,
// e.g. "Submitted At (JST)" for Asia/Tokyo.
func submittedAtLabel(sub models.Submission) string {
	return "Submitted At (" + sub.SubmittedAt.Format("MST") + ")"
}

// Rows lays out the two-column karte: intake answers, a separator, then the AI
// output. Translated free text wins over the original.
func Rows(sub models.Submission, tr models.TranslationResult) [][]interface{} {
	f := sub.Fields
	pairs := [][2]string{
		{"Submission ID", sub.ID},
		{submittedAtLabel(sub), sub.SubmittedAtText},
		{"Last Name", f.LastName},
		{"First Name", f.FirstName},
		{"Last Name (Kana)", f.LastNameKana},
		{"First Name (Kana)", f.FirstNameKana},
		{"Email", f.Email},
		{"Vitality Level (1-10)", f.VitalityText()},
		{"Digestive Rhythm (past 48h)", f.DigestiveRhythm},
		{"Sleep Quality", models.JoinList(f.SleepQuality)},
		{"Tension Areas", models.JoinList(f.TensionAreas)},
		{"Skin Condition", f.SkinCondition},
		{"Mental State", f.MentalState},
		{"Sensory Sensitivity", models.JoinList(f.SensorySensitivity)},
		{"Let Go (Free Text)", tr.Translated(models.TranslatedLetGoText, f.LetGoText)},
		{"Desired Feeling After Session", models.JoinList(f.InviteIn)},
		{"Communication Preference", f.CommunicationPreference},
		{"Allergies", tr.Translated(models.TranslatedAllergiesText, f.AllergiesText)},
		{"Medical History / Notes", tr.Translated(models.TranslatedMedicalHistoryText, f.MedicalHistoryText)},
		{"Female Condition", f.FemaleCondition},
		{karteSeparator, karteSeparator},
		{"English Summary", tr.EnglishSummary},
		{"Risk Flags", tr.RiskFlags},
		{"English Full", tr.EnglishFull},
	}

	rows := make([][]interface{}, len(pairs))
	for i, p := range pairs {
		rows[i] = []interface{}{p[0], p[1]}
	}
	return rows
}
