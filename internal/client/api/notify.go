package api

// NotificationKind tags a user-facing notification.
type NotificationKind string

const (
	NotifyError   NotificationKind = "error"
	NotifySuccess NotificationKind = "success"
)

// NotificationSink receives transient user-facing messages. The client
// pushes failures through it as a side effect; services push successes.
// Implementations decide how (and whether) to render them.
type NotificationSink interface {
	Notify(message string, kind NotificationKind)
}

// NopSink discards notifications. Useful in tests and scripted runs.
type NopSink struct{}

func (NopSink) Notify(string, NotificationKind) {}
