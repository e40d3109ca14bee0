package models

import "time"

// Role names carried as token claims and checked by the admin gate.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered account. Accounts are seeded at startup;
// there is no signup or deletion path.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Password is stored and compared verbatim. This mirrors the documented
	// contract and is not adequate for any deployment needing real
	// credential protection.
	Password  string    `json:"-"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserResponse is the wire representation of a user for admin listings.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a user entity into its wire representation.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
	}
}
