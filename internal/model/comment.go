package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID         uuid.UUID `json:"comment_id"`
	PostID     uuid.UUID `json:"post_id"`
	Username   string    `json:"username"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
}

// CommentView joins the comment with its author's display fields.
type CommentView struct {
	ID         uuid.UUID `json:"comment_id"`
	PostID     uuid.UUID `json:"post_id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	AvatarURL  *string   `json:"avatar_url"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
}
