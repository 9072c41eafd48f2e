package dto

import "github.com/golang-jwt/jwt/v5"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// AuthClaims are the claims carried by access tokens from the identity provider.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body written by the error middleware.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
