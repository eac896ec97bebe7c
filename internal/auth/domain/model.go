package domain

import "time"

// User is an authenticated account. The password hash never leaves the
// repository layer in API responses.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest carries the fields accepted on registration.
type RegisterRequest struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// LoginRequest carries the credentials presented on login.
type LoginRequest struct {
	Email    string
	Password string
}
