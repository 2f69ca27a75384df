package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
)

// DonationService covers the donation lifecycle: posting, browsing,
// editing, and pickup coordination.
type DonationService interface {
	Create(ctx context.Context, req models.CreateDonationRequest, imageName string, image io.Reader) (*models.Donation, error)
	Featured(ctx context.Context) ([]models.Donation, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Donation, error)
	Get(ctx context.Context, id string) (*models.Donation, error)
	Update(ctx context.Context, id string, req models.CreateDonationRequest) (*models.Donation, error)
	Delete(ctx context.Context, id string) error
	Mine(ctx context.Context) ([]models.Donation, error)
	RequestPickup(ctx context.Context, id string) (*models.PickupRequest, error)
	Requests(ctx context.Context, id string) ([]models.PickupRequest, error)
	UploadImage(ctx context.Context, filename string, image io.Reader) (string, error)
}

type donationService struct {
	api *api.Client
}

// NewDonationService binds donation operations to the API client.
func NewDonationService(client *api.Client) DonationService {
	return &donationService{api: client}
}

// donationForm lays the request out as multipart fields the way the
// create endpoint expects them. Categories travel as a JSON array in a
// single field.
func donationForm(req models.CreateDonationRequest, imageName string, image io.Reader) (*api.Form, error) {
	categories, err := json.Marshal(req.Categories)
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}
	form := api.NewForm().
		AddField("foodName", req.FoodName).
		AddField("quantity", strconv.FormatFloat(req.Quantity, 'f', -1, 64)).
		AddField("unit", req.Unit).
		AddField("vegetarian", strconv.FormatBool(req.Vegetarian)).
		AddField("categories", string(categories)).
		AddField("expiryDate", req.ExpiryDate).
		AddField("expiryTime", req.ExpiryTime).
		AddField("address", req.Address).
		AddField("city", req.City).
		AddField("pincode", req.Pincode)
	if req.Landmark != "" {
		form.AddField("landmark", req.Landmark)
	}
	if req.Description != "" {
		form.AddField("description", req.Description)
	}
	form.AddField("contactPhone", req.ContactPhone)
	if req.Latitude != nil && req.Longitude != nil {
		form.AddField("latitude", strconv.FormatFloat(*req.Latitude, 'f', -1, 64))
		form.AddField("longitude", strconv.FormatFloat(*req.Longitude, 'f', -1, 64))
	}
	if image != nil {
		form.AddFile("foodImage", imageName, image)
	}
	if err := form.Err(); err != nil {
		return nil, err
	}
	return form, nil
}

// Create posts a donation, optionally with a food photo.
func (d *donationService) Create(ctx context.Context, req models.CreateDonationRequest, imageName string, image io.Reader) (*models.Donation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	form, err := donationForm(req, imageName, image)
	if err != nil {
		return nil, err
	}
	res, err := d.api.PostMultipart(ctx, api.EndpointDonationsCreate, form)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Donation](res, "donation")
}

// Featured lists the donations the landing page showcases.
func (d *donationService) Featured(ctx context.Context) ([]models.Donation, error) {
	res, err := d.api.Get(ctx, api.EndpointDonationsFeatured)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Donation](res, "donations")
}

// Nearby lists donations within radiusKm of the given point. The backend
// does the distance filtering.
func (d *donationService) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Donation, error) {
	path := fmt.Sprintf("%s?lat=%s&lng=%s&radius=%s",
		api.EndpointDonationsNearby,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
		strconv.FormatFloat(radiusKm, 'f', -1, 64))
	res, err := d.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Donation](res, "donations")
}

func (d *donationService) Get(ctx context.Context, id string) (*models.Donation, error) {
	path := api.BuildURL(api.EndpointDonationsDetail, map[string]string{"id": id})
	res, err := d.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Donation](res, "donation")
}

// Update replaces the editable fields of an existing donation. Images are
// changed separately through UploadImage.
func (d *donationService) Update(ctx context.Context, id string, req models.CreateDonationRequest) (*models.Donation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	path := api.BuildURL(api.EndpointDonationsDetail, map[string]string{"id": id})
	body := map[string]any{
		"foodName":     req.FoodName,
		"quantity":     req.Quantity,
		"unit":         req.Unit,
		"vegetarian":   req.Vegetarian,
		"categories":   req.Categories,
		"expiryDate":   req.ExpiryDate,
		"expiryTime":   req.ExpiryTime,
		"address":      req.Address,
		"city":         req.City,
		"pincode":      req.Pincode,
		"landmark":     req.Landmark,
		"description":  req.Description,
		"contactPhone": req.ContactPhone,
	}
	if req.Latitude != nil && req.Longitude != nil {
		body["latitude"] = *req.Latitude
		body["longitude"] = *req.Longitude
	}
	res, err := d.api.Put(ctx, path, body)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Donation](res, "donation")
}

func (d *donationService) Delete(ctx context.Context, id string) error {
	path := api.BuildURL(api.EndpointDonationsDetail, map[string]string{"id": id})
	_, err := d.api.Delete(ctx, path)
	return err
}

// Mine lists the donations posted by the authenticated user.
func (d *donationService) Mine(ctx context.Context) ([]models.Donation, error) {
	res, err := d.api.Get(ctx, api.EndpointDonationsMine)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Donation](res, "donations")
}

// RequestPickup claims a donation on behalf of the authenticated NGO.
func (d *donationService) RequestPickup(ctx context.Context, id string) (*models.PickupRequest, error) {
	path := api.BuildURL(api.EndpointDonationsRequestPickup, map[string]string{"id": id})
	res, err := d.api.Post(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.PickupRequest](res, "request")
}

// Requests lists the pickup requests a donation has received.
func (d *donationService) Requests(ctx context.Context, id string) ([]models.PickupRequest, error) {
	path := api.BuildURL(api.EndpointDonationsRequests, map[string]string{"id": id})
	res, err := d.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeList[models.PickupRequest](res, "requests")
}

// UploadImage stores a food photo and returns its public URL.
func (d *donationService) UploadImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	form := api.NewForm().AddFile("foodImage", filename, image)
	if err := form.Err(); err != nil {
		return "", err
	}
	res, err := d.api.PostMultipart(ctx, api.EndpointDonationsUploadImage, form)
	if err != nil {
		return "", err
	}
	var payload struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := res.Decode(&payload); err != nil {
		return "", err
	}
	return payload.ImageURL, nil
}
