package domain

import "time"

// User represents an account holder of the app.
// Password is stored and compared as plaintext: seed users ship with plaintext
// credentials and the app has no real authentication layer. Known weak point.
type User struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Nickname  string    `json:"nickname"`
	IsPremium bool      `json:"isPremium"`
	CreatedAt time.Time `json:"createdAt"`
}
