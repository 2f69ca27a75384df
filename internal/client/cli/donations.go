package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
)

// timeNow is a test seam for urgency badges.
var timeNow = time.Now

// Donate walks the donation form and posts it, optionally attaching a
// photo from disk.
func (a *App) Donate(ctx context.Context) error {
	var req models.CreateDonationRequest
	var err error

	if req.FoodName, err = getSimpleText(a.reader, "Food name", a.out); err != nil {
		return err
	}
	quantityText, err := getSimpleText(a.reader, "Quantity (number)", a.out)
	if err != nil {
		return err
	}
	if req.Quantity, err = strconv.ParseFloat(quantityText, 64); err != nil {
		a.client.Notify("Quantity must be a number.", api.NotifyError)
		return err
	}
	if req.Unit, err = getSimpleText(a.reader, "Unit (kg/plates/packets)", a.out); err != nil {
		return err
	}
	if req.Vegetarian, err = GetConfirmation(a.reader, "Vegetarian?", a.out); err != nil {
		return err
	}
	categoriesText, err := getSimpleText(a.reader, "Categories (comma separated, e.g. cooked,packaged)", a.out)
	if err != nil {
		return err
	}
	for _, c := range strings.Split(categoriesText, ",") {
		if c = strings.TrimSpace(c); c != "" {
			req.Categories = append(req.Categories, c)
		}
	}
	if req.ExpiryDate, err = getSimpleText(a.reader, "Expiry date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if req.ExpiryTime, err = getSimpleText(a.reader, "Expiry time (HH:MM)", a.out); err != nil {
		return err
	}
	if req.Address, err = getSimpleText(a.reader, "Pickup address", a.out); err != nil {
		return err
	}
	if req.City, err = getSimpleText(a.reader, "City", a.out); err != nil {
		return err
	}
	if req.Pincode, err = getSimpleText(a.reader, "PIN code", a.out); err != nil {
		return err
	}
	if req.Landmark, err = GetOptionalText(a.reader, "Landmark", a.out); err != nil {
		return err
	}
	if req.Description, err = GetOptionalText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.ContactPhone, err = getSimpleText(a.reader, "Contact phone", a.out); err != nil {
		return err
	}

	imagePath, err := GetOptionalText(a.reader, "Photo file path", a.out)
	if err != nil {
		return err
	}

	var donation *models.Donation
	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			a.client.Notify(fmt.Sprintf("Cannot read photo: %v", err), api.NotifyError)
			return err
		}
		defer f.Close()
		donation, err = a.donas.Create(ctx, req, filepath.Base(imagePath), f)
		if err != nil {
			return err
		}
	} else {
		if donation, err = a.donas.Create(ctx, req, "", nil); err != nil {
			return err
		}
	}

	a.client.Notify(fmt.Sprintf("Donation %s posted. Thank you!", donation.ID), api.NotifySuccess)
	return nil
}

func (a *App) printDonations(donations []models.Donation) {
	if len(donations) == 0 {
		fmt.Fprintln(a.out, "No donations found.")
		return
	}
	now := timeNow()
	for _, d := range donations {
		badge := models.UrgencyFor(d.ExpiresAt, now)
		fmt.Fprintf(a.out, "%-10s %-9s %s, %g %s, %s (expires %s)\n",
			d.ID, badge, d.FoodName, d.Quantity, d.Unit, d.City,
			d.ExpiresAt.Local().Format("Jan 2 15:04"))
	}
}

// Featured lists the donations the landing page showcases.
func (a *App) Featured(ctx context.Context) error {
	donations, err := a.donas.Featured(ctx)
	if err != nil {
		return err
	}
	a.printDonations(donations)
	return nil
}

// Mine lists the donations posted by the signed-in account.
func (a *App) Mine(ctx context.Context) error {
	donations, err := a.donas.Mine(ctx)
	if err != nil {
		return err
	}
	a.printDonations(donations)
	return nil
}

// NearbyDonations prompts for a location and radius, then lists donations
// around it.
func (a *App) NearbyDonations(ctx context.Context) error {
	lat, lng, radius, err := a.askLocation()
	if err != nil {
		return err
	}
	donations, err := a.donas.Nearby(ctx, lat, lng, radius)
	if err != nil {
		return err
	}
	a.printDonations(donations)
	return nil
}

// RequestPickup claims a donation for the signed-in NGO.
func (a *App) RequestPickup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: pickup <donation-id>")
		return nil
	}
	request, err := a.donas.RequestPickup(ctx, args[0])
	if err != nil {
		return err
	}
	a.client.Notify(fmt.Sprintf("Pickup requested (%s).", request.Status), api.NotifySuccess)
	return nil
}

func (a *App) askLocation() (lat, lng, radius float64, err error) {
	latText, err := getSimpleText(a.reader, "Latitude", a.out)
	if err != nil {
		return 0, 0, 0, err
	}
	if lat, err = strconv.ParseFloat(latText, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid latitude: %w", err)
	}
	lngText, err := getSimpleText(a.reader, "Longitude", a.out)
	if err != nil {
		return 0, 0, 0, err
	}
	if lng, err = strconv.ParseFloat(lngText, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid longitude: %w", err)
	}
	radiusText, err := getSimpleText(a.reader, "Radius km", a.out)
	if err != nil {
		return 0, 0, 0, err
	}
	if radius, err = strconv.ParseFloat(radiusText, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid radius: %w", err)
	}
	return lat, lng, radius, nil
}
