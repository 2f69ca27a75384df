package models

// NGO is a registered receiving organization.
type NGO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	City      string  `json:"city,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
