package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims for an authenticated user
type UserClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for account creation
type RegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"omitempty,oneof=student professor pharmacist"`
	University string `json:"university"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after successful register or login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
