package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsService_Dashboard(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/statistics/dashboard", http.StatusOK,
		`{"statistics":{"totalDonations":1200,"mealsServed":5400,"activeNgos":87,"citiesCovered":14}}`)

	svc := NewStatisticsService(env.api)
	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1200, stats.TotalDonations)
	assert.Equal(t, 14, stats.CitiesCovered)
}

func TestStatisticsService_DashboardBareObject(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/statistics/dashboard", http.StatusOK,
		`{"totalDonations":7,"mealsServed":20,"activeNgos":2,"citiesCovered":1}`)

	svc := NewStatisticsService(env.api)
	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalDonations)
}

func TestStatisticsService_UserAndNGO(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/statistics/user/u1", http.StatusOK,
		`{"statistics":{"donationsPosted":9,"pickupsCompleted":7,"mealsShared":112}}`)
	env.respondJSON("/statistics/ngo/n1", http.StatusOK,
		`{"statistics":{"pickupsCompleted":30,"mealsDistributed":700,"followers":55}}`)

	svc := NewStatisticsService(env.api)

	userStats, err := svc.User(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 112, userStats.MealsShared)

	ngoStats, err := svc.NGO(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, 55, ngoStats.Followers)
}

func TestStatisticsService_RefresherDeliversSnapshots(t *testing.T) {
	env := newTestEnv(t)
	var polls atomic.Int64
	env.mux.HandleFunc("/statistics/dashboard", func(w http.ResponseWriter, r *http.Request) {
		n := polls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if n == 2 {
			// one failed poll in the middle must not stop the refresher
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"statistics":{"totalDonations":100,"mealsServed":1,"activeNgos":1,"citiesCovered":1}}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := NewStatisticsService(env.api)
	updates := svc.StartRefresher(ctx, 20*time.Millisecond)

	for i := 0; i < 2; i++ {
		select {
		case stats, ok := <-updates:
			require.True(t, ok)
			assert.Equal(t, 100, stats.TotalDonations)
		case <-time.After(5 * time.Second):
			t.Fatal("no snapshot delivered")
		}
	}
	assert.GreaterOrEqual(t, polls.Load(), int64(2))

	cancel()
	select {
	case _, ok := <-updates:
		if ok {
			// a final in-flight snapshot may arrive; the channel must
			// still close right after
			_, ok = <-updates
			assert.False(t, ok)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}
