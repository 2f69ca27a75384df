package cli

import (
	"context"
	"fmt"

	"github.com/feedlink/feedlink-go/internal/client/models"
)

// Stats prints the public marketplace counters, preferring the snapshot
// the background refresher already holds.
func (a *App) Stats(ctx context.Context) error {
	stats := a.cachedDashboard()
	if stats == nil {
		var err error
		if stats, err = a.stats.Dashboard(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.out, "Donations: %d\nMeals served: %d\nActive NGOs: %d\nCities covered: %d\n",
		stats.TotalDonations, stats.MealsServed, stats.ActiveNGOs, stats.CitiesCovered)
	return nil
}

// MyStats prints the summary for the signed-in account, donor or NGO.
func (a *App) MyStats(ctx context.Context) error {
	user := a.currentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	switch user.Role {
	case models.RoleNGO:
		stats, err := a.stats.NGO(ctx, user.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Pickups completed: %d\nMeals distributed: %d\nFollowers: %d\n",
			stats.PickupsCompleted, stats.MealsDistributed, stats.Followers)
	default:
		stats, err := a.stats.User(ctx, user.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Donations posted: %d\nPickups completed: %d\nMeals shared: %d\n",
			stats.DonationsPosted, stats.PickupsCompleted, stats.MealsShared)
	}
	return nil
}
