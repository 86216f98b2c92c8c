package repository

import (
	"context"
	"time"

	authdomain "gauth-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// refreshTokenRepository implements RefreshTokenRepository interface
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new instance of refreshTokenRepository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{
		db: db,
	}
}

// Save appends a refresh record. Existing records for the same user are left
// alone so every device keeps its own session.
func (r *refreshTokenRepository) Save(ctx context.Context, token *authdomain.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByUserID returns all refresh records for a user, newest first.
func (r *refreshTokenRepository) FindByUserID(ctx context.Context, userID string) ([]authdomain.RefreshToken, error) {
	var tokens []authdomain.RefreshToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
