package user

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest payload de registro.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email     string `json:"email"      example:"dentist@clinic.example"`
	Password  string `json:"password"   example:"s3cret"`
	FirstName string `json:"first_name" example:"Alex"`
	LastName  string `json:"last_name"  example:"Moreau"`
}

// LoginRequest payload de login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial update; empty fields keep their value.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Password  string `json:"password,omitempty"`
}

// TokenResponse carries the signed JWT plus the authenticated user.
// swagger:model
type TokenResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
