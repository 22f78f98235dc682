package domain

// Category classifies transactions. A category belongs to exactly one entry
// type. Default categories (IsDefault true, SpaceID nil) are visible to every
// space; the rest are visible only to their owning space.
type Category struct {
	CategoryID string    `json:"id"`
	Name       string    `json:"name"`
	Icon       string    `json:"icon"`
	Color      string    `json:"color"`
	Type       EntryType `json:"type"`
	IsDefault  bool      `json:"isDefault"`
	SpaceID    *string   `json:"spaceId"` // nil for default categories
}

// VisibleTo reports whether the category can be used inside spaceID.
func (c Category) VisibleTo(spaceID string) bool {
	return c.IsDefault || (c.SpaceID != nil && *c.SpaceID == spaceID)
}
