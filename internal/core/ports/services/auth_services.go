package services

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

// AuthSvcFacade defines session establishment and teardown.
type AuthSvcFacade interface {
	// Login authenticates by exact email + plaintext password match and
	// returns the user with a signed session token.
	// Returns apperrors.ErrUnauthorized on any credential mismatch.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// Register creates a new user plus their default space and logs them in.
	// Returns apperrors.ErrDuplicate when the email is already taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)

	// Logout ends the session. Tokens are stateless, so this only logs; no
	// persisted entity is touched.
	Logout(ctx context.Context, userID string) error
}
