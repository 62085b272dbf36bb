// Package notification implements the payment-approved notification relay:
// payload validation, HTML rendering and dispatch to the mail provider.
//
// The flow is linear and stateless: validate the payload shape, render the
// email document, perform exactly one outbound delivery, map the outcome onto
// the HTTP response. Nothing is persisted and nothing is retried; callers own
// re-submission, and sending the same payload twice dispatches two emails.
//
// Rendering interpolates payload fields into the document without HTML
// escaping. The endpoint is only reachable with the shared API key, so the
// payload comes from trusted backend callers; escaping would also break
// byte-compatibility with the established output.
package notification
