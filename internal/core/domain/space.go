package domain

import "time"

// Space is a shared account book scoping transactions and categories to a set
// of member users. All amounts inside a space are denominated in its currency.
type Space struct {
	SpaceID      string    `json:"id"`
	Name         string    `json:"name"`
	Emoji        string    `json:"emoji"`
	CurrencyCode string    `json:"currency"`
	MemberIDs    []string  `json:"memberIds"`
	CreatedBy    string    `json:"createdBy"` // UserID of the creator; must appear in MemberIDs
	CreatedAt    time.Time `json:"createdAt"`
}

// HasMember reports whether userID belongs to the space.
func (s Space) HasMember(userID string) bool {
	for _, id := range s.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// SpaceSelection records which space a user is currently working in.
type SpaceSelection struct {
	UserID         string `json:"userId"`
	CurrentSpaceID string `json:"currentSpaceId"` // empty when nothing is selected
}
