package kvsqlite

import (
	"context"
	"fmt"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
	"github.com/cwsbrian/mone-mori-app/internal/models"
)

type KVUserRepository struct {
	store *kvstore.Store
}

func newKVUserRepository(store *kvstore.Store) portsrepo.UserRepositoryFacade {
	return &KVUserRepository{store: store}
}

var _ portsrepo.UserRepositoryFacade = (*KVUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:    d.UserID,
		Email:     d.Email,
		Password:  d.Password,
		Nickname:  d.Nickname,
		IsPremium: d.IsPremium,
		CreatedAt: d.CreatedAt,
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:    m.UserID,
		Email:     m.Email,
		Password:  m.Password,
		Nickname:  m.Nickname,
		IsPremium: m.IsPremium,
		CreatedAt: m.CreatedAt,
	}
}

func (r *KVUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	model, err := getRecord[models.User](ctx, r.store, kvstore.CollectionUsers, userID)
	if err != nil {
		return nil, err
	}
	user := toDomainUser(*model)
	return &user, nil
}

func (r *KVUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := listRecords[models.User](ctx, r.store, kvstore.CollectionUsers)
	if err != nil {
		return nil, err
	}
	for _, m := range users {
		if m.Email == email {
			user := toDomainUser(m)
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
}

func (r *KVUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	ms, err := listRecords[models.User](ctx, r.store, kvstore.CollectionUsers)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, len(ms))
	for i, m := range ms {
		users[i] = toDomainUser(m)
	}
	return users, nil
}

func (r *KVUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return putRecord(ctx, r.store, kvstore.CollectionUsers, user.UserID, toModelUser(user))
}

func (r *KVUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if err := requireRecord(ctx, r.store, kvstore.CollectionUsers, user.UserID); err != nil {
		return err
	}
	return putRecord(ctx, r.store, kvstore.CollectionUsers, user.UserID, toModelUser(user))
}

func (r *KVUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return deleteRecord(ctx, r.store, kvstore.CollectionUsers, userID)
}
