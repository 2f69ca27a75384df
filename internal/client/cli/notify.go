package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/feedlink/feedlink-go/internal/client/api"
)

// TerminalSink renders notifications to a terminal, errors in red and
// successes in green. It is the CLI's stand-in for transient toast
// messages.
type TerminalSink struct {
	out     io.Writer
	errLine *color.Color
	okLine  *color.Color
}

// NewTerminalSink builds a sink writing to out.
func NewTerminalSink(out io.Writer) *TerminalSink {
	return &TerminalSink{
		out:     out,
		errLine: color.New(color.FgRed),
		okLine:  color.New(color.FgGreen),
	}
}

func (s *TerminalSink) Notify(message string, kind api.NotificationKind) {
	switch kind {
	case api.NotifySuccess:
		s.okLine.Fprintln(s.out, message)
	case api.NotifyError:
		s.errLine.Fprintln(s.out, message)
	default:
		fmt.Fprintln(s.out, message)
	}
}
