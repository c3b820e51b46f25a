// Package models holds the JSON-serialized records persisted by the storage
// layer. Field names match the persisted layout exactly; each entity type is
// stored as one whole JSON array under a single logical key.
package models

import "time"

// UserRole enumerates the fixed account roles.
type UserRole string

const (
	RoleInvestor UserRole = "investor"
	RoleOwner    UserRole = "owner"
	RoleAdmin    UserRole = "admin"
	RoleStandard UserRole = "standard"
)

// User is one record of the "users" collection. Passwords are stored in
// plaintext; this layer is an explicit non-authentication system. Users are
// never hard-deleted, only deactivated.
type User struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Password    string    `json:"password,omitempty"`
	Role        UserRole  `json:"role"`
	Avatar      string    `json:"avatar"`
	Rating      float64   `json:"rating"`
	Bio         string    `json:"bio,omitempty"`
	Country     string    `json:"country,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	LastLoginAt time.Time `json:"last_login_at,omitzero"`
}
