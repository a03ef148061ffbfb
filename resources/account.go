package resources

import (
	"time"

	"github.com/camden-git/hrmbackend/models"
)

type AccountResource struct {
	ID           uint      `json:"id"`
	UserName     string    `json:"user_name"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	Status       bool      `json:"status"`
}

type CreateAccountResource struct {
	UserName string `json:"user_name" validate:"required,alphanum,min=3,max=250"`
	Name     string `json:"name" validate:"required,max=250"`
	Email    string `json:"email" validate:"omitempty,email,max=500"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin editor viewer"`
}

// UpdateAccountResource replaces the profile fields. An empty Password keeps the current one.
type UpdateAccountResource struct {
	Name     string `json:"name" validate:"required,max=250"`
	Email    string `json:"email" validate:"omitempty,email,max=500"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin editor viewer"`
}

type LoginResource struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResource struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   AccountResource `json:"account"`
}

func FromAccount(a *models.Account) AccountResource {
	return AccountResource{
		ID:           a.ID,
		UserName:     a.UserName,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		CreatedAt:    a.CreatedAt,
		LastActivity: a.LastActivity,
		Status:       a.Status,
	}
}
