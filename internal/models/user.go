package models

import "time"

// User is the persisted JSON shape of a user record.
// The password is plaintext by contract: seed data ships plaintext credentials
// and the app performs plaintext comparison at login.
type User struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Nickname  string    `json:"nickname"`
	IsPremium bool      `json:"isPremium"`
	CreatedAt time.Time `json:"createdAt"`
}
