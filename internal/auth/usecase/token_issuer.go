package usecase

import (
	"context"
	"errors"
	"time"

	authdomain "gauth-backend/internal/auth/domain"
	"gauth-backend/internal/auth/repository"
	"gauth-backend/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenIssuerConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// jwtTokenIssuer implements TokenIssuer with HS256 tokens
type jwtTokenIssuer struct {
	refreshRepo   repository.RefreshTokenRepository
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
	log           logger.Logger
}

func NewTokenIssuer(refreshRepo repository.RefreshTokenRepository, cfg TokenIssuerConfig, log logger.Logger) TokenIssuer {
	if log == nil {
		log = logger.Nop()
	}
	return &jwtTokenIssuer{
		refreshRepo:   refreshRepo,
		secret:        []byte(cfg.Secret),
		accessExpiry:  cfg.AccessExpiry,
		refreshExpiry: cfg.RefreshExpiry,
		now:           time.Now,
		log:           log,
	}
}

// Issue signs an access/refresh pair for userID and records the refresh
// token. The record always expires RefreshTokenValidity after issuance,
// whatever the refresh token's own exp says. If the record cannot be
// written no tokens are returned.
func (i *jwtTokenIssuer) Issue(ctx context.Context, userID string) (*TokenPair, error) {
	now := i.now()

	accessToken, err := i.sign(jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.accessExpiry)),
	})
	if err != nil {
		return nil, authdomain.IssuanceFailed(err)
	}

	// jti keeps two refresh tokens minted in the same second distinct.
	refreshToken, err := i.sign(jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshExpiry)),
	})
	if err != nil {
		return nil, authdomain.IssuanceFailed(err)
	}

	record := &authdomain.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: now.Add(authdomain.RefreshTokenValidity),
		CreatedAt: now,
	}
	if err := i.refreshRepo.Save(ctx, record); err != nil {
		i.log.Error("failed to persist refresh token", "user_id", userID, "error", err)
		return nil, authdomain.IssuanceFailed(err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ParseAccessToken returns the subject of a valid access token. Refresh
// tokens carry a jti and are refused here.
func (i *jwtTokenIssuer) ParseAccessToken(accessToken string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	if claims.ID != "" {
		return "", errors.New("refresh token used as access token")
	}
	return claims.Subject, nil
}

func (i *jwtTokenIssuer) sign(claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}
