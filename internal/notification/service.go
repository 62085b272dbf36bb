package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lfposadac/backclashflow/internal/metrics"
	"github.com/lfposadac/backclashflow/pkg/logger"
	"github.com/lfposadac/backclashflow/pkg/mailer"
)

// subjectFormat templates the outbound subject line with the company name.
const subjectFormat = "Tu pago ha sido aprobado - %s"

// Service orchestrates one notification: validate, render, deliver.
// It holds no state between requests.
type Service struct {
	sender mailer.Sender
	log    *slog.Logger
}

// NewService creates a dispatch service delivering through the given sender.
func NewService(sender mailer.Sender, log *slog.Logger) *Service {
	if log == nil {
		log = logger.NewNope()
	}
	return &Service{sender: sender, log: log}
}

// Dispatch validates the payload, renders the email and performs exactly one
// outbound delivery — never zero once validation passes, never more than one,
// never retried. It returns the recipient address on success.
func (s *Service) Dispatch(ctx context.Context, payload map[string]any) (string, error) {
	if err := ValidatePayload(payload); err != nil {
		return "", err
	}

	recipient := stringField(payload, "creator_email", "")
	company := stringField(payload, "company_name", defaultCompanyName)

	email := &mailer.Email{
		To:      []string{recipient},
		Subject: fmt.Sprintf(subjectFormat, company),
		HTML:    BuildPaymentEmailHTML(payload),
	}

	start := time.Now()
	err := s.sender.Send(ctx, email)
	metrics.ObserveDelivery(err == nil, start)

	if err != nil {
		metrics.NotificationsFailed.Inc()
		s.log.ErrorContext(ctx, "notification delivery failed",
			slog.String("recipient", recipient),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	metrics.NotificationsSent.Inc()
	s.log.InfoContext(ctx, "notification sent", slog.String("recipient", recipient))

	return recipient, nil
}
