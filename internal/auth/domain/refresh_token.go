package domain

import "time"

// RefreshTokenValidity is how long a persisted refresh record stays valid,
// independent of the refresh JWT's own exp claim.
const RefreshTokenValidity = 7 * 24 * time.Hour

// RefreshToken tracks an issued refresh token server-side. A user may hold
// several at once, one per session.
type RefreshToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
