package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/session"
	"github.com/feedlink/feedlink-go/internal/logging"
	"github.com/stretchr/testify/require"
)

// testEnv wires a real API client and session store against an httptest
// backend.
type testEnv struct {
	mux    *http.ServeMux
	server *httptest.Server
	store  *session.Store
	api    *api.Client
}

var envSeq int

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	log := logging.NewText(io.Discard, slog.LevelError)
	envSeq++
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", envSeq)
	store, err := session.Open(context.Background(), dsn, log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	client := api.New(server.URL, 2*time.Second, store, api.NopSink{}, log)
	return &testEnv{mux: mux, server: server, store: store, api: client}
}

func (e *testEnv) respondJSON(pattern string, status int, body string) {
	e.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}
