package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/feedlink/feedlink-go/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginPersistsSession(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.cd", body["email"])
		assert.Equal(t, "hunter22", body["password"])
		assert.Equal(t, "donor", body["userType"])
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","fullName":"Asha","email":"a@b.cd","userType":"donor"}}`))
	})

	svc := NewAuthService(env.api, env.store)
	user, err := svc.Login(context.Background(), "a@b.cd", []byte("hunter22"), models.RoleDonor)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Asha", user.FullName)
	assert.Equal(t, models.RoleDonor, user.Role)

	ctx := context.Background()
	token, err := env.store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	cached, err := env.store.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "u1", cached.ID)
	assert.True(t, env.store.IsAuthenticated(ctx))
}

func TestAuthService_LoginWithoutTokenPersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/auth/login", http.StatusOK, `{"user":{"id":"u1"}}`)

	svc := NewAuthService(env.api, env.store)
	_, err := svc.Login(context.Background(), "a@b.cd", []byte("hunter22"), models.RoleDonor)
	require.ErrorIs(t, err, ErrMissingToken)

	assert.False(t, env.store.IsAuthenticated(context.Background()))
}

func TestAuthService_LoginServerRejection(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/auth/login", http.StatusUnauthorized, `{"message":"invalid credentials"}`)

	svc := NewAuthService(env.api, env.store)
	_, err := svc.Login(context.Background(), "a@b.cd", []byte("wrong"), models.RoleDonor)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials (status 401)")
	assert.False(t, env.store.IsAuthenticated(context.Background()))
}

func TestAuthService_SignupValidatesBeforeCalling(t *testing.T) {
	env := newTestEnv(t)
	// no handler registered: a dispatched request would 404 and fail the
	// assertions below differently

	svc := NewAuthService(env.api, env.store)
	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Role:     models.RoleDonor,
		FullName: "Asha",
		Email:    "not-an-email",
		Password: "longenough",
		City:     "Pune",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "donor type")
}

func TestAuthService_SignupPersistsSession(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/auth/signup", http.StatusCreated,
		`{"token":"tok-2","user":{"id":"u2","fullName":"Helping Hands","userType":"ngo"}}`)

	svc := NewAuthService(env.api, env.store)
	user, err := svc.Signup(context.Background(), models.SignupRequest{
		Role:     models.RoleNGO,
		FullName: "Helping Hands",
		Email:    "ngo@example.org",
		Password: "longenough",
		City:     "Pune",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleNGO, user.Role)
	assert.True(t, env.store.IsAuthenticated(context.Background()))
}

func TestAuthService_LogoutClearsSessionEvenWhenServerFails(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/auth/logout", http.StatusInternalServerError, `{}`)

	ctx := context.Background()
	require.NoError(t, env.store.SetToken(ctx, "tok"))
	require.NoError(t, env.store.SetUser(ctx, &models.User{ID: "u1"}))

	svc := NewAuthService(env.api, env.store)
	require.NoError(t, svc.Logout(ctx))

	assert.False(t, env.store.IsAuthenticated(ctx))
	user, err := env.store.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthService_CheckEmail(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/auth/check-email-exists", http.StatusOK, `{"exists":true}`)

	svc := NewAuthService(env.api, env.store)
	exists, err := svc.CheckEmail(context.Background(), "a@b.cd")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.CheckEmail(context.Background(), "not-an-email")
	require.Error(t, err)
}

func TestAuthService_ValidateToken(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/auth/validate-token", http.StatusUnauthorized, `{"message":"expired"}`)

	svc := NewAuthService(env.api, env.store)
	ok, err := svc.ValidateToken(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_RefreshTokenStoresNewToken(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/auth/refresh-token", http.StatusOK, `{"token":"tok-next"}`)

	ctx := context.Background()
	require.NoError(t, env.store.SetToken(ctx, "tok-old"))

	svc := NewAuthService(env.api, env.store)
	require.NoError(t, svc.RefreshToken(ctx))

	token, err := env.store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-next", token)
}

func TestAuthService_TokenExpiry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, env.store.SetToken(ctx, signed))

	svc := NewAuthService(env.api, env.store)
	got, err := svc.TokenExpiry(ctx)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp), "want %v, got %v", exp, got)
}

func TestAuthService_TokenExpiryWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	svc := NewAuthService(env.api, env.store)
	_, err := svc.TokenExpiry(context.Background())
	require.Error(t, err)
}
