package models

// Role distinguishes the two account kinds the marketplace knows.
type Role string

const (
	RoleDonor Role = "donor"
	RoleNGO   Role = "ngo"
)

// User is the cached profile snapshot stored alongside the auth token.
// JSON field names follow the backend wire format.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      Role   `json:"userType"`
	DonorType string `json:"donorType,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
