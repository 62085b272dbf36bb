package notification_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lfposadac/backclashflow/internal/notification"
)

func validPayload() map[string]any {
	return map[string]any{
		"creator_email":  "creator@example.com",
		"creator_name":   "Laura",
		"amount":         float64(1000000),
		"currency":       "COP",
		"description":    "Factura 2024-001",
		"projected_date": "2024-03-15",
		"approved_at":    "2024-03-10T14:30:00Z",
		"approver_name":  "Carlos",
		"provider_name":  "Proveedor SAS",
		"company_name":   "Acme",
	}
}

func TestBuildPaymentEmailHTML(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		payload := validPayload()
		first := notification.BuildPaymentEmailHTML(payload)
		for range 5 {
			require.Equal(t, first, notification.BuildPaymentEmailHTML(payload))
		}
	})

	t.Run("embeds formatted fields", func(t *testing.T) {
		t.Parallel()

		html := notification.BuildPaymentEmailHTML(validPayload())

		require.Contains(t, html, "Hola, Laura")
		require.Contains(t, html, "$1,000,000 COP")
		require.Contains(t, html, "15/03/2024")
		require.Contains(t, html, "10/03/2024 14:30")
		require.Contains(t, html, "<strong>Carlos</strong>")
		require.Contains(t, html, "Proveedor SAS")
		require.Contains(t, html, "Factura 2024-001")
		require.Contains(t, html, "APROBADO")
	})

	t.Run("company name appears in header and footer", func(t *testing.T) {
		t.Parallel()

		html := notification.BuildPaymentEmailHTML(validPayload())
		require.Contains(t, html, `font-size: 22px;">Acme</h1>`)
		require.Contains(t, html, "&copy; Acme &mdash;")
	})

	t.Run("defaults for absent optional fields", func(t *testing.T) {
		t.Parallel()

		html := notification.BuildPaymentEmailHTML(map[string]any{
			"creator_email": "creator@example.com",
		})

		require.Contains(t, html, "Hola, Usuario")
		require.Contains(t, html, "$0 COP")
		require.Contains(t, html, `font-size: 22px;">Induretros</h1>`)
		require.Contains(t, html, "&copy; Induretros &mdash;")
		require.Contains(t, html, "N/A")
	})

	t.Run("empty strings fall back like absent keys", func(t *testing.T) {
		t.Parallel()

		html := notification.BuildPaymentEmailHTML(map[string]any{
			"creator_name": "",
			"company_name": "",
			"currency":     "",
		})

		require.Contains(t, html, "Hola, Usuario")
		require.Contains(t, html, "$0 COP")
		require.Contains(t, html, `font-size: 22px;">Induretros</h1>`)
	})

	t.Run("does not escape payload values", func(t *testing.T) {
		t.Parallel()

		payload := validPayload()
		payload["description"] = `<b onclick="x()">bold</b>`

		html := notification.BuildPaymentEmailHTML(payload)
		require.Contains(t, html, `<b onclick="x()">bold</b>`)
	})

	t.Run("tolerates non-numeric amount", func(t *testing.T) {
		t.Parallel()

		payload := validPayload()
		payload["amount"] = "not-a-number"

		require.NotPanics(t, func() {
			html := notification.BuildPaymentEmailHTML(payload)
			require.Contains(t, html, "$0 COP")
		})
	})

	t.Run("parses numeric strings", func(t *testing.T) {
		t.Parallel()

		payload := validPayload()
		payload["amount"] = "2500000"

		html := notification.BuildPaymentEmailHTML(payload)
		require.Contains(t, html, "$2,500,000 COP")
	})
}
