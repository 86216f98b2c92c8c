package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	api "gauth-backend/cmd/api"
	authRepo "gauth-backend/internal/auth/repository"
	authUsecase "gauth-backend/internal/auth/usecase"
	"gauth-backend/internal/auth/verifier"
	"gauth-backend/pkg/config"
	"gauth-backend/pkg/database"
	"gauth-backend/pkg/logger"

	"gorm.io/gorm"
)

const verifierRequestTimeout = 10 * time.Second

// App owns every long-lived collaborator built at startup.
type App struct {
	Handler *api.Handler
	db      *gorm.DB
}

// New connects the store, builds the verifier for the configured backend and
// wires repositories, issuer and usecase into the HTTP handler.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			closeDB(db)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("database schema auto-migrated", "driver", cfg.Database.Driver)
	}

	googleVerifier, err := newVerifier(ctx, cfg, log)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	refreshTokenRepo := authRepo.NewRefreshTokenRepository(db)

	issuer := authUsecase.NewTokenIssuer(refreshTokenRepo, authUsecase.TokenIssuerConfig{
		Secret:        cfg.JWTSecret,
		AccessExpiry:  cfg.JWTAccessExpiry,
		RefreshExpiry: cfg.JWTRefreshExpiry,
	}, log)
	authUsecaseInstance := authUsecase.NewAuthUsecase(googleVerifier, userRepo, issuer, log)

	return &App{
		Handler: api.NewHandler(authUsecaseInstance, cfg, log),
		db:      db,
	}, nil
}

func (a *App) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newVerifier(ctx context.Context, cfg *config.Config, log logger.Logger) (*verifier.GoogleVerifier, error) {
	client := &http.Client{Timeout: verifierRequestTimeout}

	var backend verifier.Backend
	switch cfg.VerifierBackend {
	case config.VerifierOIDC:
		oidcBackend, err := verifier.NewOIDCBackend(ctx, cfg.OIDCIssuerURL, cfg.GoogleClientID, client)
		if err != nil {
			return nil, err
		}
		backend = oidcBackend
	default:
		idtokenBackend, err := verifier.NewIDTokenBackend(ctx, cfg.GoogleClientID, client)
		if err != nil {
			return nil, err
		}
		backend = idtokenBackend
	}
	log.Info("identity verifier ready", "backend", cfg.VerifierBackend)
	return verifier.NewGoogleVerifier(backend, log), nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
