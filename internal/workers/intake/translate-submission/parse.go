package translatesubmission

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ayurveda-intake/internal/models"
)

var (
	openingFence = regexp.MustCompile("(?i)```json\\s*")
	closingFence = regexp.MustCompile("```\\s*$")
)

// ParseResponse interprets model text. It never fails: output that does not
// hold a JSON object becomes a degraded result carrying the raw text.
func (c *Config) ParseResponse(text string) Parsed {
	raw := strings.TrimSpace(text)

	body := openingFence.ReplaceAllStringFunc(raw, firstOnly())
	body = strings.TrimSpace(closingFence.ReplaceAllString(body, ""))
	if span, ok := lastObjectSpan(body); ok {
		body = span
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(body), &obj); err != nil || obj == nil {
		reason := "response is not a JSON object"
		if err != nil {
			reason = err.Error()
		}
		return Parsed{
			Outcome: OutcomeDegraded,
			Result:  c.degraded(raw),
			Reason:  reason,
		}
	}

	return Parsed{
		Outcome: OutcomeStructured,
		Result: models.TranslationResult{
			EnglishSummary:   cellText(obj["english_summary"]),
			RiskFlags:        cellText(obj["risk_flags"]),
			EnglishFull:      cellText(obj["english_full"]),
			TranslatedFields: translatedFields(obj["translated_fields"]),
		},
	}
}

// ParseResponse interprets text with the default configuration.
func ParseResponse(text string) Parsed {
	return DefaultConfig().ParseResponse(text)
}

func (c *Config) degraded(raw string) models.TranslationResult {
	summary := raw
	if r := []rune(raw); len(r) > c.DegradedSummaryChars {
		summary = string(r[:c.DegradedSummaryChars])
	}
	return models.TranslationResult{
		EnglishSummary:   strings.TrimSpace(summary),
		RiskFlags:        models.RiskFlagsMalformedOutput,
		EnglishFull:      raw,
		TranslatedFields: map[string]string{},
	}
}

// firstOnly returns a replacer that drops the first match and keeps the rest.
func firstOnly() func(string) string {
	done := false
	return func(m string) string {
		if done {
			return m
		}
		done = true
		return ""
	}
}

// lastObjectSpan returns the last balanced top-level {...} in s. Braces inside
// JSON strings are ignored.
func lastObjectSpan(s string) (string, bool) {
	depth, start := 0, -1
	inString, escaped := false, false
	found := ""

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				found = s[start : i+1]
			}
		}
	}
	return found, found != ""
}

func translatedFields(v interface{}) map[string]string {
	out := map[string]string{}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return out
	}
	for k, val := range obj {
		if s := cellText(val); s != "" {
			out[k] = s
		}
	}
	return out
}

// cellText renders a decoded JSON value as trimmed text.
func cellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := cellText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return strings.TrimSpace(fmt.Sprint(t))
		}
		return string(b)
	}
}
