// Package session persists the client's authentication state (bearer token
// plus cached profile snapshot) and client preferences across runs.
//
// # Storage model
//
// State lives in a per-user sqlite database as key/value rows; the keys
// match the ones the FeedLink web client used in localStorage. The profile
// is stored only after a successful login or signup, so its presence
// implies a token was present at the time it was written; the two are not
// otherwise revalidated against the server on read.
//
// # Cross-process visibility
//
// Several client processes may share the database. Every write bumps the
// row's revision; Store.Watch polls revisions and emits a Change when
// another process wrote a watched key, the moral equivalent of the
// browser's storage event. See Watch for the (lack of) cross-process
// transactional guarantees.
package session
