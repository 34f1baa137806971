package model

import "time"

// User is keyed by username. Usernames are lower-cased and carry the
// community suffix ("name@community"); they never change after signup.
type User struct {
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
}

type Credential struct {
	Username       string    `json:"username"`
	HashedPassword string    `json:"hashed_password"`
	Salt           string    `json:"salt"`
	Disabled       bool      `json:"disabled"`
	DateCreated    time.Time `json:"date_created"`
}

// UserCredential is the users-with-credentials row used by authentication.
type UserCredential struct {
	User
	HashedPassword string `json:"hashed_password"`
	Salt           string `json:"salt"`
	Disabled       bool   `json:"disabled"`
}

// Profile is the assembled profile view: the user row, derived follow
// counts and the user's posts annotated for the viewer.
type Profile struct {
	Username  string      `json:"username"`
	FullName  string      `json:"full_name"`
	AvatarURL *string     `json:"avatar_url"`
	Bio       *string     `json:"bio"`
	Followers int64       `json:"followers"`
	Following int64       `json:"following"`
	Posts     []*PostView `json:"posts"`
}

type SearchResult struct {
	Username    string  `json:"username"`
	FullName    string  `json:"full_name"`
	AvatarURL   *string `json:"avatar_url"`
	IsFollowing bool    `json:"is_following"`
}
