package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNGOService_AllDecodesWrappedList(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/ngos/all", http.StatusOK,
		`{"ngos":[{"id":"n1","name":"Helping Hands","latitude":18.52,"longitude":73.86}]}`)

	svc := NewNGOService(env.api)
	ngos, err := svc.All(context.Background())
	require.NoError(t, err)
	require.Len(t, ngos, 1)
	assert.Equal(t, "Helping Hands", ngos[0].Name)
}

func TestNGOService_NearbyQueryParameters(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/ngos/nearby", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "18.52", q.Get("lat"))
		assert.Equal(t, "73.86", q.Get("lng"))
		assert.Equal(t, "25", q.Get("radius"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ngos":[]}`))
	})

	svc := NewNGOService(env.api)
	_, err := svc.Nearby(context.Background(), 18.52, 73.86, 25)
	require.NoError(t, err)
}

func TestNGOService_SearchEscapesQuery(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/ngos/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "food bank & shelter", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ngos":[]}`))
	})

	svc := NewNGOService(env.api)
	_, err := svc.Search(context.Background(), "food bank & shelter")
	require.NoError(t, err)
}

func TestNGOService_FollowAndUnfollow(t *testing.T) {
	env := newTestEnv(t)
	var methods []string
	env.mux.HandleFunc("/ngos/n1/follow", func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	svc := NewNGOService(env.api)
	require.NoError(t, svc.Follow(context.Background(), "n1"))
	require.NoError(t, svc.Unfollow(context.Background(), "n1"))
	assert.Equal(t, []string{http.MethodPost, http.MethodDelete}, methods)
}

func TestNGOService_Statistics(t *testing.T) {
	env := newTestEnv(t)
	env.respondJSON("/ngos/n1/statistics", http.StatusOK,
		`{"statistics":{"pickupsCompleted":41,"mealsDistributed":950,"followers":120}}`)

	svc := NewNGOService(env.api)
	stats, err := svc.Statistics(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, 41, stats.PickupsCompleted)
	assert.Equal(t, 950, stats.MealsDistributed)
}

func TestNGOService_ClosestRanksByDistance(t *testing.T) {
	env := newTestEnv(t)
	// reference point is Pune city center; the third entry sits in Mumbai,
	// well outside a 20 km radius
	env.respondJSON("/ngos/all", http.StatusOK, `{"ngos":[
		{"id":"far","name":"Edge of Town","latitude":18.62,"longitude":73.75},
		{"id":"near","name":"City Kitchen","latitude":18.53,"longitude":73.87},
		{"id":"mumbai","name":"Harbour Line","latitude":19.07,"longitude":72.87}
	]}`)

	svc := NewNGOService(env.api)
	ranked, err := svc.Closest(context.Background(), 18.52, 73.86, 20)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, "near", ranked[0].ID)
	assert.Equal(t, "far", ranked[1].ID)
	assert.Less(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
	assert.Greater(t, ranked[1].DistanceKm, 0.0)
}
