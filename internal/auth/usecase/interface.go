package usecase

import (
	"context"

	authdomain "gauth-backend/internal/auth/domain"
	authdto "gauth-backend/internal/auth/dto"
)

// AuthUsecase defines the session flows exposed to the delivery layer
type AuthUsecase interface {
	// Register creates the account for a first-time Google identity and
	// opens a session for it.
	Register(ctx context.Context, idToken string) (*authdto.AuthResponse, error)

	// Login opens a session for an already registered Google identity.
	Login(ctx context.Context, idToken string) (*authdto.AuthResponse, error)

	// ValidateToken resolves a bearer access token to its user.
	ValidateToken(ctx context.Context, accessToken string) (*authdomain.User, error)
}

// IdentityVerifier validates an external identity assertion.
type IdentityVerifier interface {
	Verify(ctx context.Context, assertion string) (*authdomain.IdentityClaim, error)
}

// TokenIssuer mints and parses the service's own credentials.
type TokenIssuer interface {
	Issue(ctx context.Context, userID string) (*TokenPair, error)
	ParseAccessToken(accessToken string) (string, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
