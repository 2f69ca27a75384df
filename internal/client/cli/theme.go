package cli

import (
	"context"
	"fmt"

	"github.com/feedlink/feedlink-go/internal/client/session"
)

// Theme shows or sets the persisted theme preference. The preference is
// shared with other FeedLink clients through the session store.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		theme, err := a.store.Theme(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Theme: %s\n", theme)
		return nil
	}
	switch args[0] {
	case session.ThemeLight, session.ThemeDark:
		if err := a.store.SetTheme(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Theme set to %s.\n", args[0])
	default:
		fmt.Fprintln(a.out, "Usage: theme [light|dark]")
	}
	return nil
}
