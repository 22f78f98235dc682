package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/core/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

func newCategoryFixture() (*MockCategoryRepository, *MockSpaceRepository, portssvc.CategorySvcFacade) {
	categoryRepo := new(MockCategoryRepository)
	spaceRepo := new(MockSpaceRepository)
	authorizer := services.NewSpaceService(spaceRepo, new(MockPreferenceRepository))
	return categoryRepo, spaceRepo, services.NewCategoryService(categoryRepo, authorizer)
}

func TestCategoryService_CreateSetsOwningSpace(t *testing.T) {
	categoryRepo, spaceRepo, svc := newCategoryFixture()
	spaceRepo.On("FindSpaceByID", mock.Anything, "space-1").
		Return(&domain.Space{SpaceID: "space-1", MemberIDs: []string{"user-1"}}, nil)
	categoryRepo.On("SaveCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return !c.IsDefault && c.SpaceID != nil && *c.SpaceID == "space-1" && c.Type == domain.EntryExpense
	})).Return(nil)

	category, err := svc.CreateCategory(context.Background(), "user-1", "space-1", dto.CreateCategoryRequest{
		Name: "Groceries",
		Type: "expense",
	})
	require.NoError(t, err)
	assert.False(t, category.IsDefault)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_DefaultCategoriesAreReadOnly(t *testing.T) {
	categoryRepo, _, svc := newCategoryFixture()
	categoryRepo.On("FindCategoryByID", mock.Anything, "cat-default").
		Return(&domain.Category{CategoryID: "cat-default", IsDefault: true}, nil)

	name := "Renamed"
	_, err := svc.UpdateCategory(context.Background(), "user-1", "cat-default", dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.DeleteCategory(context.Background(), "user-1", "cat-default")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	categoryRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
}

func TestCategoryService_UpdateRequiresMembership(t *testing.T) {
	categoryRepo, spaceRepo, svc := newCategoryFixture()
	owner := "space-1"
	categoryRepo.On("FindCategoryByID", mock.Anything, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", SpaceID: &owner}, nil)
	spaceRepo.On("FindSpaceByID", mock.Anything, "space-1").
		Return(&domain.Space{SpaceID: "space-1", MemberIDs: []string{"someone-else"}}, nil)

	name := "Renamed"
	_, err := svc.UpdateCategory(context.Background(), "user-1", "cat-1", dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
