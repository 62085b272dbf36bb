package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lfposadac/backclashflow/pkg/mailer"
	"github.com/lfposadac/backclashflow/pkg/mailer/resend"
)

func TestSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("posts email with bearer auth", func(t *testing.T) {
		t.Parallel()

		var captured struct {
			method string
			path   string
			auth   string
			body   map[string]any
		}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured.method = r.Method
			captured.path = r.URL.Path
			captured.auth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"email_123"}`))
		}))
		defer srv.Close()

		sender := resend.New(resend.Config{
			APIKey:      "re_test_key",
			SenderEmail: "pagos@example.com",
			BaseURL:     srv.URL,
		})

		err := sender.Send(context.Background(), &mailer.Email{
			To:      []string{"creator@example.com"},
			Subject: "Tu pago ha sido aprobado - Induretros",
			HTML:    "<p>hola</p>",
		})
		require.NoError(t, err)

		require.Equal(t, http.MethodPost, captured.method)
		require.Equal(t, "/emails", captured.path)
		require.Equal(t, "Bearer re_test_key", captured.auth)
		require.Equal(t, "pagos@example.com", captured.body["from"])
		require.Equal(t, []any{"creator@example.com"}, captured.body["to"])
		require.Equal(t, "Tu pago ha sido aprobado - Induretros", captured.body["subject"])
		require.Equal(t, "<p>hola</p>", captured.body["html"])
	})

	t.Run("201 is also success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		sender := resend.New(resend.Config{APIKey: "k", SenderEmail: "a@b.c", BaseURL: srv.URL})
		err := sender.Send(context.Background(), &mailer.Email{
			To:      []string{"x@y.z"},
			Subject: "s",
			HTML:    "<p></p>",
		})
		require.NoError(t, err)
	})

	t.Run("sender name formats the from address", func(t *testing.T) {
		t.Parallel()

		var from string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			from, _ = body["from"].(string)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		sender := resend.New(resend.Config{
			APIKey:      "k",
			SenderEmail: "pagos@example.com",
			SenderName:  "Induretros",
			BaseURL:     srv.URL,
		})
		err := sender.Send(context.Background(), &mailer.Email{
			To:      []string{"x@y.z"},
			Subject: "s",
			HTML:    "<p></p>",
		})
		require.NoError(t, err)
		require.Equal(t, "Induretros <pagos@example.com>", from)
	})

	t.Run("non-2xx status surfaces as DeliveryError", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"Invalid to address"}`))
		}))
		defer srv.Close()

		sender := resend.New(resend.Config{APIKey: "k", SenderEmail: "a@b.c", BaseURL: srv.URL})
		err := sender.Send(context.Background(), &mailer.Email{
			To:      []string{"not-an-email"},
			Subject: "s",
			HTML:    "<p></p>",
		})
		require.Error(t, err)

		de, ok := mailer.AsDeliveryError(err)
		require.True(t, ok)
		require.Equal(t, http.StatusUnprocessableEntity, de.StatusCode)
		require.Contains(t, err.Error(), "422")
		require.Contains(t, err.Error(), "Invalid to address")
	})

	t.Run("connection failure surfaces as DeliveryError without status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // refuse connections

		sender := resend.New(resend.Config{APIKey: "k", SenderEmail: "a@b.c", BaseURL: srv.URL})
		err := sender.Send(context.Background(), &mailer.Email{
			To:      []string{"x@y.z"},
			Subject: "s",
			HTML:    "<p></p>",
		})
		require.Error(t, err)

		de, ok := mailer.AsDeliveryError(err)
		require.True(t, ok)
		require.Zero(t, de.StatusCode)
	})
}
