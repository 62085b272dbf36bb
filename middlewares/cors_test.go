package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lfposadac/backclashflow/middlewares"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("default configuration allows all origins", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.CORS()(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no CORS headers when Origin header is missing", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.CORS()(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("specific origins list", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(
			middlewares.WithAllowOrigins("http://allowed.com", "http://also-allowed.com"),
		)

		t.Run("allows listed origin", func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "http://allowed.com")
			rec := httptest.NewRecorder()
			mw(okHandler).ServeHTTP(rec, req)

			require.Equal(t, "http://allowed.com", rec.Header().Get("Access-Control-Allow-Origin"))
		})

		t.Run("blocks unlisted origin", func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "http://blocked.com")
			rec := httptest.NewRecorder()
			mw(okHandler).ServeHTTP(rec, req)

			require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	})

	t.Run("preflight request is answered directly", func(t *testing.T) {
		t.Parallel()

		var calls int
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ })
		handler := middlewares.CORS()(next)

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Zero(t, calls)
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		require.NotEmpty(t, rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("credentials echo the origin", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.CORS(middlewares.WithAllowCredentials())(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
