package cli

import (
	"context"

	"github.com/feedlink/feedlink-go/internal/client/api"
)

// Subscribe signs an email up for the newsletter. Signed-in users get
// their account email offered as the default.
func (a *App) Subscribe(ctx context.Context) error {
	email, err := a.askEmail()
	if err != nil {
		return err
	}
	if err := a.letters.Subscribe(ctx, email); err != nil {
		if api.StatusOf(err) == -1 {
			a.client.Notify(err.Error(), api.NotifyError)
		}
		return err
	}
	a.client.Notify("Subscribed. Watch your inbox!", api.NotifySuccess)
	return nil
}

// Unsubscribe removes an email from the newsletter.
func (a *App) Unsubscribe(ctx context.Context) error {
	email, err := a.askEmail()
	if err != nil {
		return err
	}
	if err := a.letters.Unsubscribe(ctx, email); err != nil {
		if api.StatusOf(err) == -1 {
			a.client.Notify(err.Error(), api.NotifyError)
		}
		return err
	}
	a.client.Notify("Unsubscribed.", api.NotifySuccess)
	return nil
}

func (a *App) askEmail() (string, error) {
	if user := a.currentUser(); user != nil && user.Email != "" {
		useAccount, err := GetConfirmation(a.reader, "Use account email "+user.Email+"?", a.out)
		if err != nil {
			return "", err
		}
		if useAccount {
			return user.Email, nil
		}
	}
	return getSimpleText(a.reader, "Enter email", a.out)
}
