package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
	"github.com/feedlink/feedlink-go/internal/client/session"
	"github.com/feedlink/feedlink-go/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingToken marks a login or signup response the server accepted but
// that carried no token. The session is left untouched in that case.
var ErrMissingToken = errors.New("response carried no token")

// AuthService defines the account operations of the CLI.
//
// Login and Signup persist the returned token and profile into the session
// store atomically with respect to each other: a response without a token
// persists nothing.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte, role models.Role) (*models.User, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CheckEmail(ctx context.Context, email string) (bool, error)
	ValidateToken(ctx context.Context) (bool, error)
	RefreshToken(ctx context.Context) error
	TokenExpiry(ctx context.Context) (time.Time, error)
}

type authService struct {
	api   *api.Client
	store *session.Store
}

// NewAuthService binds the auth operations to the API client and session
// store.
func NewAuthService(client *api.Client, store *session.Store) AuthService {
	return &authService{api: client, store: store}
}

type credentialResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (a *authService) persistCredentials(ctx context.Context, cr *credentialResponse) (*models.User, error) {
	if cr.Token == "" {
		return nil, ErrMissingToken
	}
	if err := a.store.SetToken(ctx, cr.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	if err := a.store.SetUser(ctx, cr.User); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}
	return cr.User, nil
}

// Login authenticates with the backend and caches the session locally.
// The role travels as userType so the backend checks the account kind the
// user asked for. The password buffer is not retained; callers wipe it
// after return.
func (a *authService) Login(ctx context.Context, email string, password []byte, role models.Role) (*models.User, error) {
	body := map[string]string{"email": email, "password": string(password), "userType": string(role)}
	res, err := a.api.Post(ctx, api.EndpointAuthLogin, body, api.WithoutAuth())
	if err != nil {
		return nil, err
	}
	var cr credentialResponse
	if err := res.Decode(&cr); err != nil {
		return nil, err
	}
	return a.persistCredentials(ctx, &cr)
}

// Signup registers a new account and caches the session like Login does.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	res, err := a.api.Post(ctx, api.EndpointAuthSignup, &req, api.WithoutAuth())
	if err != nil {
		return nil, err
	}
	var cr credentialResponse
	if err := res.Decode(&cr); err != nil {
		return nil, err
	}
	return a.persistCredentials(ctx, &cr)
}

// Logout tells the backend best-effort and always clears the local
// session. A server failure does not keep the user logged in locally.
func (a *authService) Logout(ctx context.Context) error {
	_, _ = a.api.Post(ctx, api.EndpointAuthLogout, nil, api.Quiet())
	return a.store.Logout(ctx)
}

// CheckEmail asks whether an account with this address exists already.
// Used by signup before prompting for the rest of the form.
func (a *authService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if !models.ValidEmail(email) {
		return false, fmt.Errorf("invalid email %q", email)
	}
	body := map[string]string{"email": email}
	res, err := a.api.Post(ctx, api.EndpointAuthCheckEmail, body, api.WithoutAuth(), api.Quiet())
	if err != nil {
		return false, err
	}
	var payload struct {
		Exists bool `json:"exists"`
	}
	if err := res.Decode(&payload); err != nil {
		return false, err
	}
	return payload.Exists, nil
}

// ValidateToken asks the backend whether the stored token is still good.
// A 401 answer means "no" rather than an error.
func (a *authService) ValidateToken(ctx context.Context) (bool, error) {
	_, err := a.api.Post(ctx, api.EndpointAuthValidateToken, nil, api.Quiet())
	if err != nil {
		if api.StatusOf(err) == 401 {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RefreshToken swaps the stored token for a fresh one.
func (a *authService) RefreshToken(ctx context.Context) error {
	res, err := a.api.Post(ctx, api.EndpointAuthRefreshToken, nil)
	if err != nil {
		return err
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := res.Decode(&payload); err != nil {
		return err
	}
	if payload.Token == "" {
		return ErrMissingToken
	}
	return a.store.SetToken(ctx, payload.Token)
}

// TokenExpiry reads the exp claim of the stored token without verifying
// its signature. Only the backend can verify; the CLI just wants to know
// when to prompt for a fresh login.
func (a *authService) TokenExpiry(ctx context.Context) (time.Time, error) {
	token, err := a.store.Token(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if token == "" {
		return time.Time{}, shared.ErrNotAuthenticated
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return exp.Time, nil
}
