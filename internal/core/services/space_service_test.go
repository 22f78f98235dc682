package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/cwsbrian/mone-mori-app/internal/core/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
}

func TestSpaceService_AuthorizeMember(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	prefRepo := new(MockPreferenceRepository)
	svc := services.NewSpaceService(spaceRepo, prefRepo)

	space := &domain.Space{SpaceID: "space-1", MemberIDs: []string{"user-1"}}
	spaceRepo.On("FindSpaceByID", mock.Anything, "space-1").Return(space, nil)

	got, err := svc.AuthorizeMember(context.Background(), "user-1", "space-1")
	require.NoError(t, err)
	assert.Equal(t, "space-1", got.SpaceID)

	_, err = svc.AuthorizeMember(context.Background(), "user-2", "space-1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestSpaceService_ListAutoSelectsFirstSpace(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	prefRepo := new(MockPreferenceRepository)
	svc := services.NewSpaceService(spaceRepo, prefRepo)

	spaces := []domain.Space{
		{SpaceID: "space-1", MemberIDs: []string{"user-1"}},
		{SpaceID: "space-2", MemberIDs: []string{"user-1"}},
	}
	spaceRepo.On("FindSpacesByUserID", mock.Anything, "user-1").Return(spaces, nil)
	prefRepo.On("FindSelection", mock.Anything, "user-1").Return(nil, notFoundErr("selection"))
	prefRepo.On("SaveSelection", mock.Anything, domain.SpaceSelection{
		UserID: "user-1", CurrentSpaceID: "space-1",
	}).Return(nil)

	got, currentID, err := svc.ListSpacesForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "space-1", currentID)
	prefRepo.AssertExpectations(t)
}

func TestSpaceService_ListKeepsValidSelection(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	prefRepo := new(MockPreferenceRepository)
	svc := services.NewSpaceService(spaceRepo, prefRepo)

	spaces := []domain.Space{
		{SpaceID: "space-1", MemberIDs: []string{"user-1"}},
		{SpaceID: "space-2", MemberIDs: []string{"user-1"}},
	}
	spaceRepo.On("FindSpacesByUserID", mock.Anything, "user-1").Return(spaces, nil)
	prefRepo.On("FindSelection", mock.Anything, "user-1").
		Return(&domain.SpaceSelection{UserID: "user-1", CurrentSpaceID: "space-2"}, nil)

	_, currentID, err := svc.ListSpacesForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "space-2", currentID)
	prefRepo.AssertNotCalled(t, "SaveSelection", mock.Anything, mock.Anything)
}

func TestSpaceService_ListRepairsStaleSelection(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	prefRepo := new(MockPreferenceRepository)
	svc := services.NewSpaceService(spaceRepo, prefRepo)

	spaces := []domain.Space{{SpaceID: "space-1", MemberIDs: []string{"user-1"}}}
	spaceRepo.On("FindSpacesByUserID", mock.Anything, "user-1").Return(spaces, nil)
	prefRepo.On("FindSelection", mock.Anything, "user-1").
		Return(&domain.SpaceSelection{UserID: "user-1", CurrentSpaceID: "space-gone"}, nil)
	prefRepo.On("SaveSelection", mock.Anything, domain.SpaceSelection{
		UserID: "user-1", CurrentSpaceID: "space-1",
	}).Return(nil)

	_, currentID, err := svc.ListSpacesForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "space-1", currentID)
	prefRepo.AssertExpectations(t)
}

func TestSpaceService_CreateSpaceForcesCreatorMembership(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	prefRepo := new(MockPreferenceRepository)
	svc := services.NewSpaceService(spaceRepo, prefRepo)

	spaceRepo.On("SaveSpace", mock.Anything, mock.MatchedBy(func(sp domain.Space) bool {
		return sp.CreatedBy == "user-1" && sp.HasMember("user-1") && sp.HasMember("user-2")
	})).Return(nil)
	prefRepo.On("SaveSelection", mock.Anything, mock.Anything).Return(nil)

	space, err := svc.CreateSpace(context.Background(), "user-1", dto.CreateSpaceRequest{
		Name:      "Trip",
		Currency:  "EUR",
		MemberIDs: []string{"user-2"},
	})
	require.NoError(t, err)
	assert.True(t, space.HasMember("user-1"))
	spaceRepo.AssertExpectations(t)
}

func TestSpaceService_CreateSpaceRejectsUnknownCurrency(t *testing.T) {
	svc := services.NewSpaceService(new(MockSpaceRepository), new(MockPreferenceRepository))

	_, err := svc.CreateSpace(context.Background(), "user-1", dto.CreateSpaceRequest{
		Name:     "Trip",
		Currency: "XXX",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSpaceService_DeleteMovesSelection(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	prefRepo := new(MockPreferenceRepository)
	svc := services.NewSpaceService(spaceRepo, prefRepo)

	doomed := &domain.Space{SpaceID: "space-1", MemberIDs: []string{"user-1"}}
	remaining := []domain.Space{{SpaceID: "space-2", MemberIDs: []string{"user-1"}}}

	spaceRepo.On("FindSpaceByID", mock.Anything, "space-1").Return(doomed, nil)
	spaceRepo.On("DeleteSpace", mock.Anything, "space-1").Return(nil)
	spaceRepo.On("FindSpacesByUserID", mock.Anything, "user-1").Return(remaining, nil)
	prefRepo.On("FindSelection", mock.Anything, "user-1").
		Return(&domain.SpaceSelection{UserID: "user-1", CurrentSpaceID: "space-1"}, nil)
	prefRepo.On("SaveSelection", mock.Anything, domain.SpaceSelection{
		UserID: "user-1", CurrentSpaceID: "space-2",
	}).Return(nil)

	require.NoError(t, svc.DeleteSpace(context.Background(), "user-1", "space-1"))
	prefRepo.AssertExpectations(t)
}

func TestSpaceService_DeleteLastSpaceClearsSelection(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	prefRepo := new(MockPreferenceRepository)
	svc := services.NewSpaceService(spaceRepo, prefRepo)

	doomed := &domain.Space{SpaceID: "space-1", MemberIDs: []string{"user-1"}}
	spaceRepo.On("FindSpaceByID", mock.Anything, "space-1").Return(doomed, nil)
	spaceRepo.On("DeleteSpace", mock.Anything, "space-1").Return(nil)
	spaceRepo.On("FindSpacesByUserID", mock.Anything, "user-1").Return([]domain.Space{}, nil)
	prefRepo.On("FindSelection", mock.Anything, "user-1").
		Return(&domain.SpaceSelection{UserID: "user-1", CurrentSpaceID: "space-1"}, nil)
	prefRepo.On("SaveSelection", mock.Anything, domain.SpaceSelection{
		UserID: "user-1", CurrentSpaceID: "",
	}).Return(nil)

	require.NoError(t, svc.DeleteSpace(context.Background(), "user-1", "space-1"))
	prefRepo.AssertExpectations(t)
}
