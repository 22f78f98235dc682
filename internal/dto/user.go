package dto

import (
	"time"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// UserResponse is the outward-facing user shape. The password never leaves
// the store through this type.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	IsPremium bool      `json:"isPremium"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Nickname  *string `json:"nickname"`
	Password  *string `json:"password" binding:"omitempty,min=4"`
	IsPremium *bool   `json:"isPremium"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		IsPremium: user.IsPremium,
		CreatedAt: user.CreatedAt,
	}
}
