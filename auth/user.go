package auth

import "time"

// User is the profile of a board member as the backend reports it.
// Gender and region are part of the canonical schema even though some backend
// revisions omit them; absent fields decode to their zero values.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Nickname   string    `json:"nickname"`
	AgeGroup   string    `json:"age_group"`
	Gender     string    `json:"gender"`
	Region     string    `json:"region"`
	TrustScore int       `json:"trust_score"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Registration carries the fields the register endpoint requires.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	AgeGroup string `json:"age_group"`
	Gender   string `json:"gender"`
	Region   string `json:"region"`
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Nickname string `json:"nickname"`
	AgeGroup string `json:"age_group"`
	Gender   string `json:"gender"`
	Region   string `json:"region"`
}
