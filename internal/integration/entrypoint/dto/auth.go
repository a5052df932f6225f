// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/ledgerbook/backend/internal/domain/entity"

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse represents the response for user registration.
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserSummary represents the user data in authentication responses.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse represents the response for user login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// ToUserSummary converts a domain User to its response summary.
func ToUserSummary(user *entity.User) UserSummary {
	return UserSummary{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
