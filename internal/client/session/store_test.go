package session

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/feedlink/feedlink-go/internal/client/models"
	"github.com/feedlink/feedlink-go/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "session.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestToken_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, s.IsAuthenticated(ctx))

	require.NoError(t, s.SetToken(ctx, "abc"))

	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.True(t, s.IsAuthenticated(ctx))
}

func TestSetToken_EmptyNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, s.SetToken(ctx, ""))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestUser_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u, "absent profile reads as nil")

	profile := &models.User{
		ID:       "u-1",
		FullName: "Asha Rao",
		Email:    "asha@example.org",
		Role:     models.RoleDonor,
		City:     "Pune",
	}
	require.NoError(t, s.SetUser(ctx, profile))

	u, err = s.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, profile, u)

	// nil profile must be a no-op, not a wipe
	require.NoError(t, s.SetUser(ctx, nil))
	u, err = s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, u)
}

func TestUser_MalformedStoredDataReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, KeyUser, `{"id": 42,`))

	u, err := s.User(ctx)
	require.NoError(t, err, "malformed stored data must not surface as an error")
	assert.Nil(t, u)
}

func TestLogout_ClearsTokenAndUser(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SetToken(ctx, "abc"))
	require.NoError(t, s.SetUser(ctx, &models.User{ID: "u-1", Email: "a@b.cd", Role: models.RoleNGO}))

	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.IsAuthenticated(ctx))
	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	theme, err := s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme, "default is light")

	require.NoError(t, s.SetTheme(ctx, ThemeDark))
	theme, err = s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	assert.Error(t, s.SetTheme(ctx, "sepia"))

	// an out-of-range stored value falls back to light
	require.NoError(t, s.Set(ctx, KeyTheme, "sepia"))
	theme, err = s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestBaseURLOverride(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	v, err := s.BaseURLOverride(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.SetBaseURLOverride(ctx, "https://api.feedlink.org/api"))
	v, err = s.BaseURLOverride(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://api.feedlink.org/api", v)

	require.NoError(t, s.SetBaseURLOverride(ctx, ""))
	v, err = s.BaseURLOverride(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestRevisions_BumpOnEveryWrite(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	revs, err := s.Revisions(ctx, KeyToken)
	require.NoError(t, err)
	assert.EqualValues(t, 0, revs[KeyToken])

	require.NoError(t, s.SetToken(ctx, "one"))
	revs, err = s.Revisions(ctx, KeyToken)
	require.NoError(t, err)
	assert.EqualValues(t, 1, revs[KeyToken])

	require.NoError(t, s.SetToken(ctx, "two"))
	revs, err = s.Revisions(ctx, KeyToken)
	require.NoError(t, err)
	assert.EqualValues(t, 2, revs[KeyToken])
}
