package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. Same loose
// check the signup form used; the backend stays authoritative.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// SignupRequest is the typed payload for POST /auth/signup.
type SignupRequest struct {
	Role      Role   `json:"userType"`
	DonorType string `json:"donorType,omitempty"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	City      string `json:"city"`
	Phone     string `json:"phone,omitempty"`
}

// Validate applies the same field rules the signup form enforced.
func (r *SignupRequest) Validate() error {
	if r.Role != RoleDonor && r.Role != RoleNGO {
		return errors.New("role must be donor or ngo")
	}
	if r.Role == RoleDonor && r.DonorType == "" {
		return errors.New("donor type is required for donors")
	}
	if r.FullName == "" {
		return errors.New("full name is required")
	}
	if !ValidEmail(r.Email) {
		return fmt.Errorf("invalid email %q", r.Email)
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	if r.City == "" {
		return errors.New("city is required")
	}
	return nil
}

// CreateDonationRequest is the typed payload for POST /donations/create.
// It is sent as multipart/form-data together with the food image.
type CreateDonationRequest struct {
	FoodName     string
	Quantity     float64
	Unit         string
	Vegetarian   bool
	Categories   []string
	ExpiryDate   string // YYYY-MM-DD
	ExpiryTime   string // HH:MM
	Address      string
	City         string
	Pincode      string
	Landmark     string
	Description  string
	ContactPhone string
	Latitude     *float64
	Longitude    *float64
}

// Validate applies the donation form's required-field rules.
func (r *CreateDonationRequest) Validate() error {
	if r.FoodName == "" {
		return errors.New("food name is required")
	}
	if r.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if r.Unit == "" {
		return errors.New("unit is required")
	}
	if len(r.Categories) == 0 {
		return errors.New("at least one food category is required")
	}
	if r.ExpiryDate == "" || r.ExpiryTime == "" {
		return errors.New("expiry date and time are required")
	}
	if _, err := time.Parse("2006-01-02 15:04", r.ExpiryDate+" "+r.ExpiryTime); err != nil {
		return fmt.Errorf("invalid expiry: %w", err)
	}
	if r.Address == "" {
		return errors.New("pickup address is required")
	}
	if r.City == "" {
		return errors.New("city is required")
	}
	if r.Pincode == "" {
		return errors.New("pin code is required")
	}
	if r.ContactPhone == "" {
		return errors.New("contact phone is required")
	}
	return nil
}
