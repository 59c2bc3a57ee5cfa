package dto

import "time"

// CreateUserRequest alta de usuario en el primer sign-in.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// CreateUserResponse resultado del alta. Si el email ya existía no se crea
// un segundo registro: InsertedID es null y Message lo indica.
type CreateUserResponse struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
