package notification

import (
	"errors"
	"strings"
)

// ErrEmptyPayload indicates the request carried no usable JSON object.
var ErrEmptyPayload = errors.New("request body is required")

// requiredFields are checked for key presence only, in this order. Value
// emptiness is tolerated; malformed values surface later as formatting
// fallbacks or a provider rejection.
var requiredFields = []string{"creator_email", "creator_name", "amount"}

// ValidationError reports every required field missing from a payload.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// ValidatePayload checks that the payload is a non-empty JSON object carrying
// all required keys. All missing fields are reported at once, order-preserved.
// The payload itself is passed through unmodified on success.
func ValidatePayload(payload map[string]any) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	return nil
}
