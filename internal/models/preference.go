package models

// Preference is the persisted JSON shape of a user's space selection.
type Preference struct {
	UserID         string `json:"userId"`
	CurrentSpaceID string `json:"currentSpaceId"`
}
