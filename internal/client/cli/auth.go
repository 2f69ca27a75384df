package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
	"github.com/feedlink/feedlink-go/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// is cached locally and the prompt reflects the signed-in account.
//
// The password is wiped before returning. Service failures are already
// rendered through the notification sink; Login returns them so tests can
// observe the outcome.
func (a *App) Login(ctx context.Context) error {
	roleText, err := getSimpleText(a.reader, "Account type (donor/ngo)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password, models.Role(strings.ToLower(roleText)))
	if err != nil {
		return err
	}

	a.setUser(user)
	a.client.Notify(fmt.Sprintf("Welcome back, %s!", user.FullName), api.NotifySuccess)
	return nil
}

// Signup walks the registration form: role, profile fields, password. The
// email is checked for an existing account before the rest is asked.
func (a *App) Signup(ctx context.Context) error {
	roleText, err := getSimpleText(a.reader, "Account type (donor/ngo)", a.out)
	if err != nil {
		return err
	}
	role := models.Role(strings.ToLower(roleText))

	req := models.SignupRequest{Role: role}

	if role == models.RoleDonor {
		if req.DonorType, err = getSimpleText(a.reader, "Donor type (individual/restaurant/caterer)", a.out); err != nil {
			return err
		}
	}

	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	exists, err := a.auth.CheckEmail(ctx, req.Email)
	if err == nil && exists {
		a.client.Notify("An account with this email already exists. Try 'login'.", api.NotifyError)
		return nil
	}

	if req.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if req.City, err = getSimpleText(a.reader, "City", a.out); err != nil {
		return err
	}
	if req.Phone, err = GetOptionalText(a.reader, "Phone", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)
	req.Password = string(password)

	user, err := a.auth.Signup(ctx, req)
	req.Password = ""
	if err != nil {
		if api.StatusOf(err) == -1 {
			// local validation failures never reach the sink
			a.client.Notify(err.Error(), api.NotifyError)
		}
		return err
	}

	a.setUser(user)
	a.client.Notify(fmt.Sprintf("Welcome to FeedLink, %s!", user.FullName), api.NotifySuccess)
	return nil
}

// Logout clears the cached session. The server is told best-effort.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.setUser(nil)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the cached profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.currentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)", user.FullName, user.Email, user.Role)
	if user.City != "" {
		fmt.Fprintf(a.out, " in %s", user.City)
	}
	fmt.Fprintln(a.out)
	return nil
}
