package dto

import (
	"time"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// CreateSpaceRequest carries the fields for creating a space. The creator is
// always added to MemberIDs server-side.
type CreateSpaceRequest struct {
	Name      string   `json:"name" binding:"required"`
	Emoji     string   `json:"emoji"`
	Currency  string   `json:"currency" binding:"required,currencycode"`
	MemberIDs []string `json:"memberIds"`
}

// UpdateSpaceRequest defines the data allowed for updating a space.
// Pointers differentiate omitted fields from zero values.
type UpdateSpaceRequest struct {
	Name      *string   `json:"name"`
	Emoji     *string   `json:"emoji"`
	Currency  *string   `json:"currency" binding:"omitempty,currencycode"`
	MemberIDs *[]string `json:"memberIds"`
}

// SelectSpaceRequest names the space to make current.
type SelectSpaceRequest struct {
	SpaceID string `json:"spaceId" binding:"required"`
}

// SpaceResponse is the outward-facing space shape.
type SpaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Currency  string    `json:"currency"`
	MemberIDs []string  `json:"memberIds"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListSpacesResponse wraps a user's spaces plus their current selection.
type ListSpacesResponse struct {
	Spaces         []SpaceResponse `json:"spaces"`
	CurrentSpaceID string          `json:"currentSpaceId,omitempty"`
}

// ToSpaceResponse converts a domain.Space to its response DTO.
func ToSpaceResponse(space *domain.Space) SpaceResponse {
	return SpaceResponse{
		ID:        space.SpaceID,
		Name:      space.Name,
		Emoji:     space.Emoji,
		Currency:  space.CurrencyCode,
		MemberIDs: space.MemberIDs,
		CreatedBy: space.CreatedBy,
		CreatedAt: space.CreatedAt,
	}
}

// ToListSpacesResponse converts a slice of spaces plus the selection.
func ToListSpacesResponse(spaces []domain.Space, currentSpaceID string) ListSpacesResponse {
	out := make([]SpaceResponse, len(spaces))
	for i := range spaces {
		out[i] = ToSpaceResponse(&spaces[i])
	}
	return ListSpacesResponse{Spaces: out, CurrentSpaceID: currentSpaceID}
}
