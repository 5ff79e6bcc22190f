// internal/models/payload.go
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Payload is the loosely typed request body. Nothing reads it directly past the
// validation boundary; use IntakeFields instead.
type Payload map[string]interface{}

// SafeString returns the trimmed text of key, "" when absent or null.
func (p Payload) SafeString(key string) string {
	return stringify(p[key])
}

// SafeNumber returns the value of key as a finite number. Numeric strings are
// accepted, everything else is reported as absent.
func (p Payload) SafeNumber(key string) (float64, bool) {
	var n float64
	switch v := p[key].(type) {
	case float64:
		n = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// SafeList returns the non-empty trimmed values of key. A plain string is split
// on commas.
func (p Payload) SafeList(key string) []string {
	out := []string{}
	switch v := p[key].(type) {
	case nil:
	case []interface{}:
		for _, item := range v {
			if s := stringify(item); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	default:
		for _, part := range strings.Split(stringify(v), ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
