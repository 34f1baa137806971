package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityKind string

const (
	ActivityFollow  ActivityKind = "follow"
	ActivityLike    ActivityKind = "like"
	ActivityComment ActivityKind = "comment"
)

// ActivityEvent is only built through the New*Activity constructors, so
// a follow can never carry a post reference and a like or comment can
// never lack one.
type ActivityEvent struct {
	kind       ActivityKind
	actingUser string
	postID     *uuid.UUID
}

func NewFollowActivity(follower string) ActivityEvent {
	return ActivityEvent{kind: ActivityFollow, actingUser: follower}
}

func NewLikeActivity(liker string, postID uuid.UUID) ActivityEvent {
	return ActivityEvent{kind: ActivityLike, actingUser: liker, postID: &postID}
}

func NewCommentActivity(commenter string, postID uuid.UUID) ActivityEvent {
	return ActivityEvent{kind: ActivityComment, actingUser: commenter, postID: &postID}
}

func (e ActivityEvent) Kind() ActivityKind { return e.kind }

func (e ActivityEvent) ActingUser() string { return e.actingUser }

// PostID is nil for follow events.
func (e ActivityEvent) PostID() *uuid.UUID { return e.postID }

// ActivityEntry is one append-only log row joined with the acting
// user's display fields for presentation. Entries are never updated or
// deleted except by user-delete cascade.
type ActivityEntry struct {
	ActionUser string       `json:"action_user"`
	Action     ActivityKind `json:"action"`
	FullName   string       `json:"full_name"`
	AvatarURL  *string      `json:"avatar_url"`
	PostID     *uuid.UUID   `json:"post_id"`
	Datetime   time.Time    `json:"datetime"`
}
