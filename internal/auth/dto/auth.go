package dto

import authdomain "gauth-backend/internal/auth/domain"

type SignupRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type LoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse is the public projection of an account.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// AuthenticatedUser is what the access-token guard exposes to handlers.
type AuthenticatedUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type ProfileResponse struct {
	Message string            `json:"message"`
	User    AuthenticatedUser `json:"user"`
}

type ErrorResponse struct {
	Message    string `json:"message"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

func NewUserResponse(user *authdomain.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	}
}
