// Package health provides the HTTP handler for the liveness probe.
//
// The service is stateless and holds no connections between requests, so
// there is nothing to probe beyond process liveness:
//
//	r.Get("/health", health.LivenessHandler())
package health
