// Package api turns request descriptors into HTTP calls against the
// FeedLink backend and normalizes every outcome into either a Result or an
// *Error.
//
// # Contract
//
// Relative paths are joined to the configured base URL; absolute URLs pass
// through verbatim. Requests default to JSON content-type and accept
// headers; multipart form bodies replace the content-type with the form's
// own boundary. When auth is requested and a non-empty token is stored, an
// "Authorization: Bearer <token>" header is attached.
//
// Every call runs under its own deadline. Failures come in exactly three
// flavors, distinguishable by Error.Status:
//
//   - 0:   transport failure (DNS, connection, TLS)
//   - 408: the deadline elapsed, synthesized locally
//   - else: the server's own status, with a message extracted from the
//     body's "message" field, then "error", then "HTTP <status>"
//
// Failed calls also emit a user-facing notification through the injected
// NotificationSink unless the descriptor suppresses it.
package api
