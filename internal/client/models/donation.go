package models

import "time"

// Donation is a posted food donation as returned by the backend.
type Donation struct {
	ID           string    `json:"id"`
	FoodName     string    `json:"foodName"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Vegetarian   bool      `json:"vegetarian"`
	Categories   []string  `json:"categories"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city"`
	Pincode      string    `json:"pincode,omitempty"`
	Landmark     string    `json:"landmark,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	Latitude     float64   `json:"latitude,omitempty"`
	Longitude    float64   `json:"longitude,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// Expired reports whether the donation's pickup window has closed.
func (d *Donation) Expired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}

// Urgency classifies how soon a donation expires, for list badges.
type Urgency string

const (
	UrgencyUrgent    Urgency = "URGENT"
	UrgencyHot       Urgency = "HOT"
	UrgencyAvailable Urgency = "AVAILABLE"
)

// UrgencyFor returns the badge for a donation expiring at expiresAt:
// URGENT under one hour, HOT under four, AVAILABLE otherwise.
func UrgencyFor(expiresAt, now time.Time) Urgency {
	left := expiresAt.Sub(now)
	switch {
	case left < time.Hour:
		return UrgencyUrgent
	case left < 4*time.Hour:
		return UrgencyHot
	default:
		return UrgencyAvailable
	}
}

// PickupRequest is an NGO's claim on a donation.
type PickupRequest struct {
	ID         string    `json:"id"`
	DonationID string    `json:"donationId"`
	NGOID      string    `json:"ngoId"`
	NGOName    string    `json:"ngoName,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
