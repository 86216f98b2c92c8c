package repository

import (
	"context"

	authdomain "gauth-backend/internal/auth/domain"
)

// UserRepository is keyed access to the users table.
//
// Lookups return (nil, nil) when no row matches. A non-nil error always means
// the store itself failed and must not be read as "user does not exist".
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
}

// RefreshTokenRepository persists issued refresh tokens.
type RefreshTokenRepository interface {
	Save(ctx context.Context, token *authdomain.RefreshToken) error
	FindByUserID(ctx context.Context, userID string) ([]authdomain.RefreshToken, error)
}
