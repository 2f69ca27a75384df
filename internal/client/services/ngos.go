package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
	"github.com/feedlink/feedlink-go/internal/geo"
)

// RankedNGO is an NGO annotated with its distance from a reference point.
type RankedNGO struct {
	models.NGO
	DistanceKm float64
}

// NGOService covers the receiving-organization directory.
type NGOService interface {
	All(ctx context.Context) ([]models.NGO, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NGO, error)
	Search(ctx context.Context, query string) ([]models.NGO, error)
	Get(ctx context.Context, id string) (*models.NGO, error)
	Follow(ctx context.Context, id string) error
	Unfollow(ctx context.Context, id string) error
	Statistics(ctx context.Context, id string) (*models.NGOStats, error)
	// Closest ranks the full directory by distance from the given point,
	// keeping only entries within radiusKm, nearest first. The ranking
	// happens locally so it works even when the backend's geo index is
	// unavailable.
	Closest(ctx context.Context, lat, lng, radiusKm float64) ([]RankedNGO, error)
}

type ngoService struct {
	api *api.Client
}

// NewNGOService binds NGO directory operations to the API client.
func NewNGOService(client *api.Client) NGOService {
	return &ngoService{api: client}
}

func (n *ngoService) All(ctx context.Context) ([]models.NGO, error) {
	res, err := n.api.Get(ctx, api.EndpointNGOsAll)
	if err != nil {
		return nil, err
	}
	return decodeList[models.NGO](res, "ngos")
}

// Nearby lets the backend filter by distance.
func (n *ngoService) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NGO, error) {
	path := fmt.Sprintf("%s?lat=%s&lng=%s&radius=%s",
		api.EndpointNGOsNearby,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
		strconv.FormatFloat(radiusKm, 'f', -1, 64))
	res, err := n.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeList[models.NGO](res, "ngos")
}

func (n *ngoService) Search(ctx context.Context, query string) ([]models.NGO, error) {
	path := api.EndpointNGOsSearch + "?q=" + url.QueryEscape(query)
	res, err := n.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeList[models.NGO](res, "ngos")
}

func (n *ngoService) Get(ctx context.Context, id string) (*models.NGO, error) {
	path := api.BuildURL(api.EndpointNGOsDetail, map[string]string{"id": id})
	res, err := n.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.NGO](res, "ngo")
}

func (n *ngoService) Follow(ctx context.Context, id string) error {
	path := api.BuildURL(api.EndpointNGOsFollow, map[string]string{"id": id})
	_, err := n.api.Post(ctx, path, nil)
	return err
}

func (n *ngoService) Unfollow(ctx context.Context, id string) error {
	path := api.BuildURL(api.EndpointNGOsFollow, map[string]string{"id": id})
	_, err := n.api.Delete(ctx, path)
	return err
}

func (n *ngoService) Statistics(ctx context.Context, id string) (*models.NGOStats, error) {
	path := api.BuildURL(api.EndpointNGOsStatistics, map[string]string{"id": id})
	res, err := n.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.NGOStats](res, "statistics")
}

func (n *ngoService) Closest(ctx context.Context, lat, lng, radiusKm float64) ([]RankedNGO, error) {
	all, err := n.All(ctx)
	if err != nil {
		return nil, err
	}
	ranked := make([]RankedNGO, 0, len(all))
	for _, ngo := range all {
		dist := geo.Distance(lat, lng, ngo.Latitude, ngo.Longitude)
		if dist <= radiusKm {
			ranked = append(ranked, RankedNGO{NGO: ngo, DistanceKm: dist})
		}
	}
	geo.SortByDistance(ranked, lat, lng, func(r RankedNGO) (float64, float64) {
		return r.Latitude, r.Longitude
	})
	return ranked, nil
}
