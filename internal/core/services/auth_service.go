package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
	"github.com/cwsbrian/mone-mori-app/internal/platform/config"
)

// defaultSpaceName is the space every new user starts with.
const (
	defaultSpaceName     = "Personal Account Book"
	defaultSpaceEmoji    = "💰"
	defaultSpaceCurrency = "CAD"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	spaceSvc portssvc.SpaceSvcFacade
	cfg      *config.Config
}

func NewAuthService(userRepo portsrepo.UserRepositoryFacade, spaceSvc portssvc.SpaceSvcFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, spaceSvc: spaceSvc, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("login for %s: %w", email, apperrors.ErrUnauthorized)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user for login: %w", err)
	}

	// Plaintext comparison: credentials are stored unhashed in the local file.
	if user.Password != password {
		return nil, "", fmt.Errorf("login for %s: %w", email, apperrors.ErrUnauthorized)
	}

	token, err := s.generateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	s.LogInfo(ctx, "User logged in", "user_id", user.UserID)
	return user, token, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("email %s already registered: %w", req.Email, apperrors.ErrDuplicate)
	}

	user := domain.User{
		UserID:    domain.NewID(domain.UserIDPrefix),
		Email:     req.Email,
		Password:  req.Password,
		Nickname:  req.Nickname,
		IsPremium: false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to save new user: %w", err)
	}

	// Every account starts with a personal space, selected as current.
	if _, err := s.spaceSvc.CreateSpace(ctx, user.UserID, dto.CreateSpaceRequest{
		Name:     defaultSpaceName,
		Emoji:    defaultSpaceEmoji,
		Currency: defaultSpaceCurrency,
	}); err != nil {
		return nil, "", fmt.Errorf("failed to create default space: %w", err)
	}

	token, err := s.generateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID)
	return &user, token, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	// Tokens are stateless; the client discards its copy.
	s.LogInfo(ctx, "User logged out", "user_id", userID)
	return nil
}

func (s *authService) generateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
