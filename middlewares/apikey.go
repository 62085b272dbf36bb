package middlewares

import (
	"encoding/json"
	"net/http"
)

// DefaultAPIKeyHeader is the request header carrying the shared secret.
const DefaultAPIKeyHeader = "X-API-Key"

// defaultAPIKeyMessage is the error returned to unauthenticated callers.
const defaultAPIKeyMessage = "API key invalida o no proporcionada"

// APIKeyConfig configures the API key middleware.
type APIKeyConfig struct {
	// Header is the request header checked for the key.
	Header string

	// Message is the user-facing error for missing or invalid keys.
	Message string
}

// APIKeyOption configures APIKeyConfig.
type APIKeyOption func(*APIKeyConfig)

// WithAPIKeyHeader sets the header checked for the key.
func WithAPIKeyHeader(header string) APIKeyOption {
	return func(cfg *APIKeyConfig) {
		cfg.Header = header
	}
}

// WithAPIKeyMessage sets the error message for rejected requests.
func WithAPIKeyMessage(message string) APIKeyOption {
	return func(cfg *APIKeyConfig) {
		cfg.Message = message
	}
}

// APIKey returns middleware that rejects any request whose key header does not
// exactly equal the given secret. Rejected requests get a 401 JSON error and
// the wrapped handler is never invoked. A single equality check per request;
// no partial matching, no rate limiting, no lockout.
func APIKey(key string, opts ...APIKeyOption) func(http.Handler) http.Handler {
	cfg := &APIKeyConfig{
		Header:  DefaultAPIKeyHeader,
		Message: defaultAPIKeyMessage,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(cfg.Header)
			if got == "" || got != key {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": cfg.Message})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
