package verifier

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

// IDTokenBackend validates tokens against Google's published signing keys.
type IDTokenBackend struct {
	validator *idtoken.Validator
	audience  string
}

// NewIDTokenBackend builds a validator bound to audience (the OAuth client
// ID). A nil client uses the library default.
func NewIDTokenBackend(ctx context.Context, audience string, client *http.Client) (*IDTokenBackend, error) {
	var opts []option.ClientOption
	if client != nil {
		opts = append(opts, option.WithHTTPClient(client))
	}
	validator, err := idtoken.NewValidator(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create idtoken validator: %w", err)
	}
	return &IDTokenBackend{validator: validator, audience: audience}, nil
}

func (b *IDTokenBackend) Validate(ctx context.Context, idToken string) (map[string]any, error) {
	payload, err := b.validator.Validate(ctx, idToken, b.audience)
	if err != nil {
		return nil, err
	}
	claims := make(map[string]any, len(payload.Claims)+1)
	for k, v := range payload.Claims {
		claims[k] = v
	}
	claims["sub"] = payload.Subject
	return claims, nil
}
