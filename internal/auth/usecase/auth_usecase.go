package usecase

import (
	"context"

	authdomain "gauth-backend/internal/auth/domain"
	authdto "gauth-backend/internal/auth/dto"
	"gauth-backend/internal/auth/repository"
	"gauth-backend/pkg/logger"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	verifier IdentityVerifier
	userRepo repository.UserRepository
	issuer   TokenIssuer
	log      logger.Logger
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(verifier IdentityVerifier, userRepo repository.UserRepository, issuer TokenIssuer, log logger.Logger) AuthUsecase {
	if log == nil {
		log = logger.Nop()
	}
	return &authUsecase{
		verifier: verifier,
		userRepo: userRepo,
		issuer:   issuer,
		log:      log,
	}
}

func (u *authUsecase) Register(ctx context.Context, idToken string) (*authdto.AuthResponse, error) {
	claim, err := u.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(ctx, claim.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.AlreadyExists()
	}

	// Two concurrent signups can both get here; the unique email index
	// rejects the second insert.
	user := authdomain.NewGoogleUser(claim)
	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Warn("failed to create user", "error", err)
		return nil, authdomain.CreateFailed(err)
	}
	u.log.Info("user registered", "user_id", user.ID, "provider", user.Provider)

	return u.openSession(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, idToken string) (*authdto.AuthResponse, error) {
	claim, err := u.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(ctx, claim.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.NotRegistered()
	}

	return u.openSession(ctx, user)
}

func (u *authUsecase) ValidateToken(ctx context.Context, accessToken string) (*authdomain.User, error) {
	userID, err := u.issuer.ParseAccessToken(accessToken)
	if err != nil {
		u.log.Debug("rejected access token", "error", err)
		return nil, authdomain.Unauthorized()
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.Unauthorized()
	}
	return user, nil
}

func (u *authUsecase) openSession(ctx context.Context, user *authdomain.User) (*authdto.AuthResponse, error) {
	tokens, err := u.issuer.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         authdto.NewUserResponse(user),
	}, nil
}
