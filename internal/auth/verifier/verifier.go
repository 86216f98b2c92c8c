package verifier

import (
	"context"
	"strings"

	authdomain "gauth-backend/internal/auth/domain"
	"gauth-backend/pkg/logger"
)

// Backend checks an ID token's signature, issuer, audience and expiry and
// returns its claim set.
type Backend interface {
	Validate(ctx context.Context, idToken string) (map[string]any, error)
}

// GoogleVerifier turns a Google ID token into an IdentityClaim.
type GoogleVerifier struct {
	backend Backend
	log     logger.Logger
}

func NewGoogleVerifier(backend Backend, log logger.Logger) *GoogleVerifier {
	if log == nil {
		log = logger.Nop()
	}
	return &GoogleVerifier{backend: backend, log: log}
}

// Verify makes a single validation attempt. Every failure, whatever its
// cause, is reported to the caller as the same VerificationFailed error.
func (v *GoogleVerifier) Verify(ctx context.Context, assertion string) (*authdomain.IdentityClaim, error) {
	token := strings.TrimSpace(assertion)
	if !looksLikeJWT(token) {
		v.log.Debug("rejecting malformed id token before verification", "length", len(token))
		return nil, authdomain.VerificationFailed()
	}

	claims, err := v.backend.Validate(ctx, token)
	if err != nil {
		v.log.Warn("google token verification failed", "error", err)
		return nil, authdomain.VerificationFailed()
	}

	claim := &authdomain.IdentityClaim{
		Subject: stringClaim(claims, "sub"),
		Email:   stringClaim(claims, "email"),
		Name:    stringClaim(claims, "name"),
		Picture: stringClaim(claims, "picture"),
	}
	if claim.Subject == "" || claim.Email == "" || claim.Name == "" || claim.Picture == "" {
		v.log.Warn("google token payload incomplete",
			"subject_present", claim.Subject != "",
			"email_present", claim.Email != "",
			"name_present", claim.Name != "",
			"picture_present", claim.Picture != "",
		)
		return nil, authdomain.VerificationFailed()
	}
	return claim, nil
}

// looksLikeJWT checks for three non-empty dot-separated segments.
func looksLikeJWT(token string) bool {
	if token == "" {
		return false
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
	}
	return true
}

func stringClaim(claims map[string]any, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
