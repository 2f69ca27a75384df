package services

import (
	"context"
	"time"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
)

// StatisticsService exposes the public counters plus the per-account
// summaries.
type StatisticsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	User(ctx context.Context, id string) (*models.UserStats, error)
	NGO(ctx context.Context, id string) (*models.NGOStats, error)
	// StartRefresher polls the dashboard counters on a fixed interval and
	// delivers each successful snapshot on the returned channel. Failed
	// polls are skipped silently; the next tick retries at the same
	// cadence. The channel closes when ctx is done.
	StartRefresher(ctx context.Context, interval time.Duration) <-chan models.DashboardStats
}

type statisticsService struct {
	api *api.Client
}

// NewStatisticsService binds the statistics operations to the API client.
func NewStatisticsService(client *api.Client) StatisticsService {
	return &statisticsService{api: client}
}

func (s *statisticsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	res, err := s.api.Get(ctx, api.EndpointStatsDashboard, api.WithoutAuth())
	if err != nil {
		return nil, err
	}
	return decodeObject[models.DashboardStats](res, "statistics")
}

func (s *statisticsService) User(ctx context.Context, id string) (*models.UserStats, error) {
	path := api.BuildURL(api.EndpointStatsUser, map[string]string{"id": id})
	res, err := s.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.UserStats](res, "statistics")
}

func (s *statisticsService) NGO(ctx context.Context, id string) (*models.NGOStats, error) {
	path := api.BuildURL(api.EndpointStatsNGO, map[string]string{"id": id})
	res, err := s.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.NGOStats](res, "statistics")
}

func (s *statisticsService) StartRefresher(ctx context.Context, interval time.Duration) <-chan models.DashboardStats {
	out := make(chan models.DashboardStats, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			res, err := s.api.Get(ctx, api.EndpointStatsDashboard, api.WithoutAuth(), api.Quiet())
			if err != nil {
				continue
			}
			stats, err := decodeObject[models.DashboardStats](res, "statistics")
			if err != nil {
				continue
			}
			select {
			case out <- *stats:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
