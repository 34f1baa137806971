package model

import (
	"time"

	"github.com/google/uuid"
)

// Post content is immutable after creation; there is no edit path.
type Post struct {
	ID         uuid.UUID `json:"post_id"`
	Username   string    `json:"username"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PostView is a post annotated for a particular viewer: aggregate
// comment/like counts and whether the viewer has liked it, all computed
// at read time.
type PostView struct {
	ID         uuid.UUID `json:"post_id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	AvatarURL  *string   `json:"avatar_url"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
	ImageURL   *string   `json:"image_url"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Comments   int64     `json:"comments"`
	Likes      int64     `json:"likes"`
	Liked      bool      `json:"liked"`
}
