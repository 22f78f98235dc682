package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

type spaceService struct {
	BaseService
	spaceRepo portsrepo.SpaceRepositoryFacade
	prefRepo  portsrepo.PreferenceRepository
}

func NewSpaceService(spaceRepo portsrepo.SpaceRepositoryFacade, prefRepo portsrepo.PreferenceRepository) portssvc.SpaceSvcFacade {
	return &spaceService{spaceRepo: spaceRepo, prefRepo: prefRepo}
}

var _ portssvc.SpaceSvcFacade = (*spaceService)(nil)

// AuthorizeMember loads the space and checks membership. Other services lean
// on this as their guard for space-scoped operations.
func (s *spaceService) AuthorizeMember(ctx context.Context, userID, spaceID string) (*domain.Space, error) {
	space, err := s.spaceRepo.FindSpaceByID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load space for authorization: %w", err)
	}
	if !space.HasMember(userID) {
		return nil, fmt.Errorf("user %s is not a member of space %s: %w", userID, spaceID, apperrors.ErrForbidden)
	}
	return space, nil
}

func (s *spaceService) ListSpacesForUser(ctx context.Context, userID string) ([]domain.Space, string, error) {
	spaces, err := s.spaceRepo.FindSpacesByUserID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list spaces: %w", err)
	}

	currentID, err := s.resolveSelection(ctx, userID, spaces)
	if err != nil {
		return nil, "", err
	}
	return spaces, currentID, nil
}

// resolveSelection returns the user's valid current space id, repairing the
// persisted selection when it is unset or points at a space the user can no
// longer see.
func (s *spaceService) resolveSelection(ctx context.Context, userID string, spaces []domain.Space) (string, error) {
	selected := ""
	sel, err := s.prefRepo.FindSelection(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to load space selection: %w", err)
	}
	if sel != nil {
		selected = sel.CurrentSpaceID
	}

	valid := selected != "" && slices.ContainsFunc(spaces, func(sp domain.Space) bool {
		return sp.SpaceID == selected
	})
	if valid {
		return selected, nil
	}

	next := ""
	if len(spaces) > 0 {
		next = spaces[0].SpaceID
	}
	if next == selected {
		return next, nil
	}

	if err := s.prefRepo.SaveSelection(ctx, domain.SpaceSelection{UserID: userID, CurrentSpaceID: next}); err != nil {
		return "", fmt.Errorf("failed to repair space selection: %w", err)
	}
	s.LogDebug(ctx, "Space selection repaired", "user_id", userID, "space_id", next)
	return next, nil
}

func (s *spaceService) GetSpace(ctx context.Context, userID, spaceID string) (*domain.Space, error) {
	return s.AuthorizeMember(ctx, userID, spaceID)
}

func (s *spaceService) CreateSpace(ctx context.Context, creatorUserID string, req dto.CreateSpaceRequest) (*domain.Space, error) {
	if !domain.IsSupportedCurrency(req.Currency) {
		return nil, fmt.Errorf("unsupported currency %q: %w", req.Currency, apperrors.ErrValidation)
	}

	memberIDs := slices.Clone(req.MemberIDs)
	if !slices.Contains(memberIDs, creatorUserID) {
		memberIDs = append([]string{creatorUserID}, memberIDs...)
	}

	space := domain.Space{
		SpaceID:      domain.NewID(domain.SpaceIDPrefix),
		Name:         req.Name,
		Emoji:        req.Emoji,
		CurrencyCode: req.Currency,
		MemberIDs:    memberIDs,
		CreatedBy:    creatorUserID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.spaceRepo.SaveSpace(ctx, space); err != nil {
		return nil, fmt.Errorf("failed to save space: %w", err)
	}

	// A freshly created space becomes the creator's current one.
	if err := s.prefRepo.SaveSelection(ctx, domain.SpaceSelection{UserID: creatorUserID, CurrentSpaceID: space.SpaceID}); err != nil {
		return nil, fmt.Errorf("failed to select new space: %w", err)
	}

	s.LogInfo(ctx, "Space created", "space_id", space.SpaceID, "user_id", creatorUserID)
	return &space, nil
}

func (s *spaceService) UpdateSpace(ctx context.Context, userID, spaceID string, req dto.UpdateSpaceRequest) (*domain.Space, error) {
	space, err := s.AuthorizeMember(ctx, userID, spaceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		space.Name = *req.Name
	}
	if req.Emoji != nil {
		space.Emoji = *req.Emoji
	}
	if req.Currency != nil {
		if !domain.IsSupportedCurrency(*req.Currency) {
			return nil, fmt.Errorf("unsupported currency %q: %w", *req.Currency, apperrors.ErrValidation)
		}
		space.CurrencyCode = *req.Currency
	}
	if req.MemberIDs != nil {
		members := slices.Clone(*req.MemberIDs)
		if !slices.Contains(members, space.CreatedBy) {
			return nil, fmt.Errorf("creator cannot be removed from members: %w", apperrors.ErrValidation)
		}
		space.MemberIDs = members
	}

	if err := s.spaceRepo.UpdateSpace(ctx, *space); err != nil {
		return nil, fmt.Errorf("failed to update space: %w", err)
	}

	s.LogInfo(ctx, "Space updated", "space_id", spaceID)
	return space, nil
}

func (s *spaceService) DeleteSpace(ctx context.Context, userID, spaceID string) error {
	if _, err := s.AuthorizeMember(ctx, userID, spaceID); err != nil {
		return err
	}

	if err := s.spaceRepo.DeleteSpace(ctx, spaceID); err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}

	// Move the selection off the deleted space for this user. Other members'
	// stale selections heal lazily on their next list.
	remaining, err := s.spaceRepo.FindSpacesByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list remaining spaces: %w", err)
	}
	if _, err := s.resolveSelection(ctx, userID, remaining); err != nil {
		return err
	}

	s.LogInfo(ctx, "Space deleted", "space_id", spaceID, "user_id", userID)
	return nil
}

func (s *spaceService) CurrentSpace(ctx context.Context, userID string) (*domain.Space, error) {
	spaces, currentID, err := s.ListSpacesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range spaces {
		if spaces[i].SpaceID == currentID {
			return &spaces[i], nil
		}
	}
	return nil, nil
}

func (s *spaceService) SelectSpace(ctx context.Context, userID, spaceID string) error {
	if _, err := s.AuthorizeMember(ctx, userID, spaceID); err != nil {
		return err
	}
	if err := s.prefRepo.SaveSelection(ctx, domain.SpaceSelection{UserID: userID, CurrentSpaceID: spaceID}); err != nil {
		return fmt.Errorf("failed to save space selection: %w", err)
	}
	s.LogDebug(ctx, "Space selected", "user_id", userID, "space_id", spaceID)
	return nil
}
