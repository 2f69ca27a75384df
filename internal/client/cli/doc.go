// Package cli implements the interactive FeedLink terminal client: a
// read-eval-print loop over the application services, with the session kept
// in a local store shared between client processes.
package cli
