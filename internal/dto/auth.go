package dto

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
	Nickname string `json:"nickname" binding:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
