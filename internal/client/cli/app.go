package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/config"
	"github.com/feedlink/feedlink-go/internal/client/models"
	"github.com/feedlink/feedlink-go/internal/client/services"
	"github.com/feedlink/feedlink-go/internal/client/session"
	"github.com/feedlink/feedlink-go/internal/logging"
)

// App wires the configuration, session store, and application services
// behind the REPL.
type App struct {
	config  *config.Config
	store   *session.Store
	client  *api.Client
	log     logging.Logger
	out     io.Writer
	reader  *bufio.Reader
	auth    services.AuthService
	donas   services.DonationService
	ngos    services.NGOService
	stats   services.StatisticsService
	letters services.NewsletterService
	users   services.UserService

	mu        sync.RWMutex
	user      *models.User
	dashboard *models.DashboardStats
}

// NewApp opens the session store at the configured DSN and builds the
// service graph. The stored base URL override, when present, wins over the
// configured one.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := session.Open(ctx, cfg.DatabaseDSN, log)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	cfg.ApplyStoredBaseURL(ctx, store)

	sink := NewTerminalSink(os.Stdout)
	client := api.New(cfg.BaseURL, cfg.RequestTimeout, store, sink, log)

	a := &App{
		config:  cfg,
		store:   store,
		client:  client,
		log:     log,
		out:     os.Stdout,
		reader:  bufio.NewReader(os.Stdin),
		auth:    services.NewAuthService(client, store),
		donas:   services.NewDonationService(client),
		ngos:    services.NewNGOService(client),
		stats:   services.NewStatisticsService(client),
		letters: services.NewNewsletterService(client),
		users:   services.NewUserService(client, store),
	}

	if user, err := store.User(ctx); err == nil {
		a.setUser(user)
	}
	return a, nil
}

// Close releases the session store.
func (a *App) Close() error {
	return a.store.Close()
}

// Run starts the session watcher and the REPL, returning when the user
// exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.watchSession(ctx)
	go a.refreshDashboard(ctx)

	fmt.Fprintln(a.out, "Welcome to FeedLink (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) setUser(user *models.User) {
	a.mu.Lock()
	a.user = user
	a.mu.Unlock()
}

func (a *App) currentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}

func (a *App) status() string {
	user := a.currentUser()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.FullName, user.Role)
}

// refreshDashboard keeps the public counters warm so the stats command
// answers instantly.
func (a *App) refreshDashboard(ctx context.Context) {
	for stats := range a.stats.StartRefresher(ctx, a.config.StatsRefreshInterval) {
		snapshot := stats
		a.mu.Lock()
		a.dashboard = &snapshot
		a.mu.Unlock()
	}
}

func (a *App) cachedDashboard() *models.DashboardStats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dashboard
}

// watchSession follows the shared session store so a login or logout done
// by another FeedLink process on the same machine is reflected here.
func (a *App) watchSession(ctx context.Context) {
	changes := a.store.Watch(ctx, a.config.WatchInterval, session.KeyToken, session.KeyUser)
	for change := range changes {
		switch change.Key {
		case session.KeyUser:
			if !change.Present {
				a.setUser(nil)
				continue
			}
			if user, err := a.store.User(ctx); err == nil {
				a.setUser(user)
			}
		case session.KeyToken:
			if !change.Present {
				a.setUser(nil)
			}
		}
	}
}
