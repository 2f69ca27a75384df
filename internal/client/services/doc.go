// Package services contains the application services of the FeedLink
// client: typed operations over the API client plus the local session
// store. Each service is an interface with one concrete implementation so
// the CLI layer can be tested against fakes.
package services
