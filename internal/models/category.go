package models

// Category is the persisted JSON shape of a category record. SpaceID is nil
// for default categories, which every space can see.
type Category struct {
	CategoryID string  `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Type       string  `json:"type"` // "income" or "expense"
	IsDefault  bool    `json:"isDefault"`
	SpaceID    *string `json:"spaceId"`
}
