package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/feedlink/feedlink-go/internal/client/models"
	"github.com/feedlink/feedlink-go/internal/client/session/migrations"
	"github.com/feedlink/feedlink-go/internal/dbx"
	"github.com/feedlink/feedlink-go/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Storage keys. They mirror the keys the web client kept in localStorage so
// a session written by one FeedLink client is legible to another.
const (
	KeyToken   = "feedlink_auth_token"
	KeyUser    = "feedlink_user_data"
	KeyTheme   = "theme"
	KeyBaseURL = "apiBaseUrl"
)

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store persists the session (bearer token + cached profile) and client
// preferences in a local sqlite database. The database may be shared by
// several client processes of the same user; every write bumps a per-key
// revision so a Watcher in another process can observe it.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// Open opens (creating if necessary) the session database at dsn and
// applies the embedded migrations.
func Open(ctx context.Context, dsn string, log logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key. The second return value reports
// whether the key was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	return get(ctx, s.db, key)
}

// Set stores value under key, bumping the key's revision.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return set(ctx, s.db, key, value)
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	return del(ctx, s.db, key)
}

// Revisions returns the current revision per key; absent keys map to 0.
func (s *Store) Revisions(ctx context.Context, keys ...string) (map[string]int64, error) {
	result := make(map[string]int64, len(keys))
	for _, k := range keys {
		result[k] = 0
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, revision FROM storage`)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var rev int64
		if err := rows.Scan(&key, &rev); err != nil {
			return nil, fmt.Errorf("scan revision row: %w", err)
		}
		if _, wanted := result[key]; wanted {
			result[key] = rev
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revision rows: %w", err)
	}
	return result, nil
}

// Token returns the stored bearer token, or the empty string when absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, _, err := s.Get(ctx, KeyToken)
	return v, err
}

// SetToken persists the bearer token. An empty token is a no-op: a valid
// stored token is never overwritten with nothing.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Set(ctx, KeyToken, token)
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.Delete(ctx, KeyToken)
}

// SetUser serializes and persists the profile snapshot. A nil profile is a
// no-op.
func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.Set(ctx, KeyUser, string(data))
}

// User returns the cached profile snapshot, or nil when it is missing or
// unparseable. Corrupted stored data is treated as absent, never surfaced
// as an error.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	raw, ok, err := s.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn(ctx, "discarding malformed stored profile", "error", err)
		return nil, nil
	}
	return &u, nil
}

func (s *Store) ClearUser(ctx context.Context) error {
	return s.Delete(ctx, KeyUser)
}

// IsAuthenticated reports whether a non-empty token is stored. Storage
// errors read as "not authenticated".
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "token lookup failed", "error", err)
		return false
	}
	return token != ""
}

// Logout removes the token and the cached profile in one transaction, so no
// reader of the public interface can observe a half-cleared session.
func (s *Store) Logout(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := del(ctx, tx, KeyToken); err != nil {
			return err
		}
		return del(ctx, tx, KeyUser)
	})
}

// Theme returns the stored theme preference, defaulting to light.
func (s *Store) Theme(ctx context.Context) (string, error) {
	v, ok, err := s.Get(ctx, KeyTheme)
	if err != nil {
		return "", err
	}
	if !ok || (v != ThemeLight && v != ThemeDark) {
		return ThemeLight, nil
	}
	return v, nil
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.Set(ctx, KeyTheme, theme)
}

// BaseURLOverride returns the stored API base URL override, or the empty
// string. Satisfies config.BaseURLSource.
func (s *Store) BaseURLOverride(ctx context.Context) (string, error) {
	v, _, err := s.Get(ctx, KeyBaseURL)
	return v, err
}

// SetBaseURLOverride persists an API base URL override; an empty value
// removes it.
func (s *Store) SetBaseURLOverride(ctx context.Context, url string) error {
	if url == "" {
		return s.Delete(ctx, KeyBaseURL)
	}
	return s.Set(ctx, KeyBaseURL, url)
}

func get(ctx context.Context, q dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get storage[%s]: %w", key, err)
	}
	return value, true, nil
}

func set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			revision = storage.revision + 1,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("set storage[%s]: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete storage[%s]: %w", key, err)
	}
	return nil
}
