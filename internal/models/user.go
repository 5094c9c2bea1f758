package models

import (
	"time"
)

const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RolePremium = "premium"
)

type User struct {
	ID          int        `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Role        string     `json:"role"`
	Package     *string    `json:"package,omitempty"`
	LastUpdated time.Time  `json:"last_updated"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}
