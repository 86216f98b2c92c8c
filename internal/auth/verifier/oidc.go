package verifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
)

// GoogleIssuer is the default OIDC discovery URL.
const GoogleIssuer = "https://accounts.google.com"

// OIDCBackend validates tokens through OIDC discovery and the issuer's JWKS.
type OIDCBackend struct {
	verifier *oidc.IDTokenVerifier
	client   *http.Client
}

func NewOIDCBackend(ctx context.Context, issuerURL, clientID string, client *http.Client) (*OIDCBackend, error) {
	if client != nil {
		ctx = oidc.ClientContext(ctx, client)
	}
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init oidc provider %s: %w", issuerURL, err)
	}
	return &OIDCBackend{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
		client:   client,
	}, nil
}

func (b *OIDCBackend) Validate(ctx context.Context, idToken string) (map[string]any, error) {
	if b.client != nil {
		ctx = oidc.ClientContext(ctx, b.client)
	}
	token, err := b.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("id_token verification failed: %w", err)
	}
	var claims map[string]any
	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("id_token claims parse failed: %w", err)
	}
	return claims, nil
}
