package dto

import "gearguard/internal/entities"

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResponseDTO struct {
	AccessToken string         `json:"access_token"`
	User        *entities.User `json:"user"`
}
