package models

import "time"

// Space is the persisted JSON shape of a space record.
type Space struct {
	SpaceID      string    `json:"id"`
	Name         string    `json:"name"`
	Emoji        string    `json:"emoji"`
	CurrencyCode string    `json:"currency"`
	MemberIDs    []string  `json:"memberIds"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
