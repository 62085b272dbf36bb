// Package middlewares provides HTTP middleware for the notification service.
//
// All middleware follows the standard func(http.Handler) http.Handler shape
// and is configured through functional options:
//
//	r.Use(middlewares.CORS(middlewares.WithAllowOrigins("https://app.example.com")))
//	r.Use(middlewares.APIKey(cfg.APIKey))
package middlewares
