package emailsend

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"ayurveda-intake/internal/models"
)

// Subject returns "<prefix> <submission id>".
func (c *Config) Subject(submissionID string) string {
	return c.SubjectPrefix + " " + submissionID
}

// Body renders the plain-text staff notification.
func (c *Config) Body(submissionID string, tr models.TranslationResult) string {
	flags := strings.TrimSpace(tr.RiskFlags)
	if flags == "" {
		flags = c.NoFlagsText
	}
	return fmt.Sprintf(
		"New Ayurveda intake received.\n\nSubmission ID: %s\nRisk Flags: %s\n\nSummary:\n%s\n\nFull Detail:\n%s",
		submissionID, flags, tr.EnglishSummary, tr.EnglishFull,
	)
}

// BuildMessage assembles a single-part text/plain UTF-8 message. Non-ASCII
// subjects are RFC 2047 encoded.
func BuildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// EncodeRaw produces the base64url form without padding that the Gmail API
// expects in Message.Raw.
func EncodeRaw(message []byte) string {
	return base64.RawURLEncoding.EncodeToString(message)
}
