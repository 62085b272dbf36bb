package notification

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// stringField returns the payload value under key as a string, falling back
// when the key is absent or the value is falsy (nil or empty). Non-string
// values are stringified rather than rejected; the validator deliberately
// does not check value types.
func stringField(payload map[string]any, key, fallback string) string {
	v, ok := payload[key]
	if !ok || v == nil {
		return fallback
	}

	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if s == "" {
		return fallback
	}
	return s
}

// numberField returns the payload value under key as a float64, tolerating
// arbitrary input: numbers pass through, numeric strings are parsed, anything
// else falls back to zero. Formatting must never fail the request.
func numberField(payload map[string]any, key string) float64 {
	switch v := payload[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}
