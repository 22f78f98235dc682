package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/core/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
	"github.com/cwsbrian/mone-mori-app/internal/platform/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
}

func newAuthFixture(t *testing.T) (*MockUserRepository, *MockSpaceRepository, *MockPreferenceRepository, *config.Config) {
	t.Helper()
	return new(MockUserRepository), new(MockSpaceRepository), new(MockPreferenceRepository), testConfig()
}

func buildAuthService(userRepo *MockUserRepository, spaceRepo *MockSpaceRepository, prefRepo *MockPreferenceRepository, cfg *config.Config) portssvc.AuthSvcFacade {
	spaceSvc := services.NewSpaceService(spaceRepo, prefRepo)
	return services.NewAuthService(userRepo, spaceSvc, cfg)
}

func TestAuthService_LoginSuccess(t *testing.T) {
	userRepo, spaceRepo, prefRepo, cfg := newAuthFixture(t)
	svc := buildAuthService(userRepo, spaceRepo, prefRepo, cfg)

	user := &domain.User{UserID: "user-1", Email: "a@example.com", Password: "1234"}
	userRepo.On("FindUserByEmail", mock.Anything, "a@example.com").Return(user, nil)

	got, token, err := svc.Login(context.Background(), "a@example.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	userRepo, spaceRepo, prefRepo, cfg := newAuthFixture(t)
	svc := buildAuthService(userRepo, spaceRepo, prefRepo, cfg)

	user := &domain.User{UserID: "user-1", Email: "a@example.com", Password: "1234"}
	userRepo.On("FindUserByEmail", mock.Anything, "a@example.com").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "a@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	userRepo, spaceRepo, prefRepo, cfg := newAuthFixture(t)
	svc := buildAuthService(userRepo, spaceRepo, prefRepo, cfg)

	userRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, fmt.Errorf("no such user: %w", apperrors.ErrNotFound))

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "1234")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_RegisterCreatesUserAndDefaultSpace(t *testing.T) {
	userRepo, spaceRepo, prefRepo, cfg := newAuthFixture(t)
	svc := buildAuthService(userRepo, spaceRepo, prefRepo, cfg)

	userRepo.On("FindUserByEmail", mock.Anything, "new@example.com").
		Return(nil, fmt.Errorf("no such user: %w", apperrors.ErrNotFound))
	userRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" && u.Nickname == "Newbie" && !u.IsPremium
	})).Return(nil)
	spaceRepo.On("SaveSpace", mock.Anything, mock.MatchedBy(func(sp domain.Space) bool {
		return sp.Name == "Personal Account Book" && sp.CurrencyCode == "CAD" && len(sp.MemberIDs) == 1
	})).Return(nil)
	prefRepo.On("SaveSelection", mock.Anything, mock.Anything).Return(nil)

	user, token, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "pw",
		Nickname: "Newbie",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.UserID)

	userRepo.AssertExpectations(t)
	spaceRepo.AssertExpectations(t)
	prefRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	userRepo, spaceRepo, prefRepo, cfg := newAuthFixture(t)
	svc := buildAuthService(userRepo, spaceRepo, prefRepo, cfg)

	existing := &domain.User{UserID: "user-1", Email: "taken@example.com"}
	userRepo.On("FindUserByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	_, _, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "pw",
		Nickname: "Dup",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	userRepo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}
