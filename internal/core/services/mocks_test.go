package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Mock SpaceRepository ---

type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) FindSpaceByID(ctx context.Context, spaceID string) (*domain.Space, error) {
	args := m.Called(ctx, spaceID)
	var space *domain.Space
	if args.Get(0) != nil {
		space = args.Get(0).(*domain.Space)
	}
	return space, args.Error(1)
}

func (m *MockSpaceRepository) FindSpacesByUserID(ctx context.Context, userID string) ([]domain.Space, error) {
	args := m.Called(ctx, userID)
	var spaces []domain.Space
	if args.Get(0) != nil {
		spaces = args.Get(0).([]domain.Space)
	}
	return spaces, args.Error(1)
}

func (m *MockSpaceRepository) SaveSpace(ctx context.Context, space domain.Space) error {
	return m.Called(ctx, space).Error(0)
}

func (m *MockSpaceRepository) UpdateSpace(ctx context.Context, space domain.Space) error {
	return m.Called(ctx, space).Error(0)
}

func (m *MockSpaceRepository) DeleteSpace(ctx context.Context, spaceID string) error {
	return m.Called(ctx, spaceID).Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesBySpace(ctx context.Context, spaceID string) ([]domain.Category, error) {
	args := m.Called(ctx, spaceID)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsBySpace(ctx context.Context, spaceID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, spaceID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return m.Called(ctx, transactionID).Error(0)
}

// --- Mock PreferenceRepository ---

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) FindSelection(ctx context.Context, userID string) (*domain.SpaceSelection, error) {
	args := m.Called(ctx, userID)
	var sel *domain.SpaceSelection
	if args.Get(0) != nil {
		sel = args.Get(0).(*domain.SpaceSelection)
	}
	return sel, args.Error(1)
}

func (m *MockPreferenceRepository) SaveSelection(ctx context.Context, selection domain.SpaceSelection) error {
	return m.Called(ctx, selection).Error(0)
}
