package dispatch

import (
	"encoding/json"
	"strings"
)

// stringParam reads a trimmed string parameter, "" when absent or not a
// string.
func stringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// numberParam reads a numeric parameter. Decoded JSON yields float64, but
// hand-built maps in Go callers often carry ints, so both are accepted.
func numberParam(params map[string]any, key string) (float64, bool) {
	switch v := params[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
