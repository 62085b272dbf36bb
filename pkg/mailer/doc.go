// Package mailer defines the email sending contract used by the service.
//
// The package separates message construction from delivery: callers build an
// [Email] and hand it to a [Sender]. Providers implement Sender; the built-in
// Resend adapter lives in the resend subpackage.
//
// # Usage
//
//	sender := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		SenderEmail: os.Getenv("MAIL_FROM"),
//	})
//
//	err := sender.Send(ctx, &mailer.Email{
//		To:      []string{"user@example.com"},
//		Subject: "Notification",
//		HTML:    "<p>Hello!</p>",
//	})
//
// # Errors
//
// Failed deliveries surface as *[DeliveryError], carrying the provider's HTTP
// status code and response detail so callers can report the upstream cause.
// Transport-level failures (timeouts, connection errors) carry a zero status.
//
// # Custom providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) error {
//		// Send email using your provider's API
//		return nil
//	}
package mailer
