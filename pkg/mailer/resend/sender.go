package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/resend/resend-go/v3"

	"github.com/lfposadac/backclashflow/pkg/mailer"
)

// sendTimeout bounds a single delivery attempt. The provider call must fail
// deterministically rather than hang.
const sendTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 4 << 10

// Sender implements mailer.Sender against the Resend HTTP API.
//
// It uses the official SDK's request types for the wire format but drives the
// HTTP exchange itself: delivery is successful only on status 200 or 201, and
// any other status must be surfaced verbatim to the caller. The SDK accepts
// any 2xx and hides the response status, which breaks that contract.
type Sender struct {
	client *http.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Sender{
		client: &http.Client{Timeout: sendTimeout},
		config: cfg,
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if len(email.To) == 0 {
		return mailer.ErrNoRecipient
	}

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	payload := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("resend: failed to encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(s.config.BaseURL, "/")+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend: %w: %w", mailer.ErrSendFailed, &mailer.DeliveryError{Detail: err.Error()})
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("resend: %w: %w", mailer.ErrSendFailed, &mailer.DeliveryError{
			StatusCode: resp.StatusCode,
			Detail:     strings.TrimSpace(string(detail)),
		})
	}

	// Response JSON (message ID) is intentionally ignored; delivery status is
	// not tracked.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
