package domain

import "time"

// ProviderGoogle is the only identity provider accounts are federated from.
const ProviderGoogle = "google"

type User struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Provider   string    `json:"-" gorm:"not null;uniqueIndex:idx_users_provider_subject"`
	ProviderID string    `json:"-" gorm:"not null;uniqueIndex:idx_users_provider_subject"`
	Email      string    `json:"email" gorm:"not null;uniqueIndex"`
	Name       string    `json:"name"`
	Picture    string    `json:"picture"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// IdentityClaim is the verified identity extracted from a Google ID token.
type IdentityClaim struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// NewGoogleUser builds the account record for a first signup.
func NewGoogleUser(claim *IdentityClaim) *User {
	return &User{
		Provider:   ProviderGoogle,
		ProviderID: claim.Subject,
		Email:      claim.Email,
		Name:       claim.Name,
		Picture:    claim.Picture,
	}
}
