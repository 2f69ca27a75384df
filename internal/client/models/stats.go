package models

// DashboardStats backs the public landing-page counters.
type DashboardStats struct {
	TotalDonations int `json:"totalDonations"`
	MealsServed    int `json:"mealsServed"`
	ActiveNGOs     int `json:"activeNgos"`
	CitiesCovered  int `json:"citiesCovered"`
}

// UserStats summarizes a donor's activity.
type UserStats struct {
	DonationsPosted  int `json:"donationsPosted"`
	PickupsCompleted int `json:"pickupsCompleted"`
	MealsShared      int `json:"mealsShared"`
}

// NGOStats summarizes an NGO's activity.
type NGOStats struct {
	PickupsCompleted int `json:"pickupsCompleted"`
	MealsDistributed int `json:"mealsDistributed"`
	Followers        int `json:"followers"`
}
