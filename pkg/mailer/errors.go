package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)

// DeliveryError reports a rejected or failed delivery attempt.
// StatusCode is the provider's HTTP status when one was received,
// zero for transport-level failures.
type DeliveryError struct {
	Detail     string
	StatusCode int
}

func (e *DeliveryError) Error() string {
	if e.StatusCode == 0 {
		return e.Detail
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Detail)
}

// AsDeliveryError extracts a DeliveryError from an error chain if present.
func AsDeliveryError(err error) (*DeliveryError, bool) {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
