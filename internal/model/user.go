package model

import (
	"errors"
	"time"
)

// User roles
const (
	RoleUser   = "user"
	RoleArtist = "artist"
	RoleAdmin  = "admin"
)

// User represents an account in the system
type User struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	PasswordHashed string    `db:"password_hashed" json:"-"` // "-" hides from JSON output
	Role           string    `db:"role" json:"role"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// PublicUser is the projection returned by auth endpoints. The credential
// never appears here.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public returns the projection of u safe to hand to clients.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// UserSummary is a lightweight representation for embedding in other
// responses (event rosters, blog authors).
type UserSummary struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// SignupRequest is the request body for POST /api/auth/signup
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user artist admin"`
}

// LoginRequest is the request body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful signup or login.
// Token and user sit beside status at the top level.
type AuthResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token"`
	User   *PublicUser `json:"user"`
}

// MeResponse is returned by GET /api/auth/me with cart and favorites
// resolved against the catalog.
type MeResponse struct {
	Status string   `json:"status"`
	User   *Profile `json:"user"`
}

// Profile is the current user with resolved collections.
type Profile struct {
	*PublicUser
	Favorites []Artwork  `json:"favorites"`
	Cart      []CartItem `json:"cart"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when attempting to sign up with a taken email
	ErrEmailExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)
