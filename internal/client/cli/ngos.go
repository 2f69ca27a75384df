package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
)

func (a *App) printNGOs(ngos []models.NGO) {
	if len(ngos) == 0 {
		fmt.Fprintln(a.out, "No NGOs found.")
		return
	}
	for _, n := range ngos {
		line := fmt.Sprintf("%-10s %s", n.ID, n.Name)
		if n.City != "" {
			line += ", " + n.City
		}
		if n.Rating > 0 {
			line += fmt.Sprintf(" (%.1f)", n.Rating)
		}
		fmt.Fprintln(a.out, line)
	}
}

// ListNGOs prints the full directory.
func (a *App) ListNGOs(ctx context.Context) error {
	ngos, err := a.ngos.All(ctx)
	if err != nil {
		return err
	}
	a.printNGOs(ngos)
	return nil
}

// SearchNGOs looks the directory up by name or category.
func (a *App) SearchNGOs(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		if query, err = getSimpleText(a.reader, "Search for", a.out); err != nil {
			return err
		}
	}
	ngos, err := a.ngos.Search(ctx, query)
	if err != nil {
		return err
	}
	a.printNGOs(ngos)
	return nil
}

// ClosestNGOs ranks the directory by distance from a prompted location.
func (a *App) ClosestNGOs(ctx context.Context) error {
	lat, lng, radius, err := a.askLocation()
	if err != nil {
		return err
	}
	ranked, err := a.ngos.Closest(ctx, lat, lng, radius)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		fmt.Fprintln(a.out, "No NGOs within that radius.")
		return nil
	}
	for _, r := range ranked {
		fmt.Fprintf(a.out, "%-10s %s, %.1f km away\n", r.ID, r.Name, r.DistanceKm)
	}
	return nil
}

// Follow subscribes the signed-in account to an NGO's updates.
func (a *App) Follow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: follow <ngo-id>")
		return nil
	}
	if err := a.ngos.Follow(ctx, args[0]); err != nil {
		return err
	}
	a.client.Notify("Following.", api.NotifySuccess)
	return nil
}

// Unfollow undoes Follow.
func (a *App) Unfollow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: unfollow <ngo-id>")
		return nil
	}
	if err := a.ngos.Unfollow(ctx, args[0]); err != nil {
		return err
	}
	a.client.Notify("Unfollowed.", api.NotifySuccess)
	return nil
}
