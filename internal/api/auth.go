package api

import "github.com/mmynk/ludus/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
	// LandingPage is where the client routes after login, based on role.
	LandingPage string `json:"landingPage"`
}

type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required,oneof=admin instructor"`
}

type UserResponse struct {
	User *models.User `json:"user"`
}
