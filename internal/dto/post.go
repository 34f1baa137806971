package dto

import "github.com/google/uuid"

// CreatePostDto is bound from the multipart form; the optional photo
// part is read separately from the request.
type CreatePostDto struct {
	Content   string   `form:"post" binding:"required,max=1000"`
	Latitude  *float64 `form:"latitude"`
	Longitude *float64 `form:"longitude"`
}

type CreateCommentDto struct {
	PostID  uuid.UUID `json:"post_id" binding:"required"`
	Content string    `json:"content" binding:"required,max=1000"`
}
