package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lybamughees/mobile-project/internal/model"
)

type User interface {
	Create(ctx context.Context, user model.User, cred model.Credential) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindWithCredential(ctx context.Context, username string) (*model.UserCredential, error)
	Exists(ctx context.Context, username string) (bool, error)
	UpdateBio(ctx context.Context, username string, bio string) error
	UpdateAvatar(ctx context.Context, username string, avatarURL string) error
	Profile(ctx context.Context, username string) (*model.Profile, error)
	Search(ctx context.Context, query string, viewer string) ([]*model.SearchResult, error)
}

type Follow interface {
	Follow(ctx context.Context, follower string, followee string) (bool, error)
	Followers(ctx context.Context, username string) ([]string, error)
	Following(ctx context.Context, username string) ([]string, error)
	FollowerCount(ctx context.Context, username string) (int64, error)
	FollowingCount(ctx context.Context, username string) (int64, error)
	IsFollowing(ctx context.Context, observer string, subject string) (bool, error)
}

type Post interface {
	Create(ctx context.Context, post model.Post, imageURL *string, location *model.Location) error
	Find(ctx context.Context, postID uuid.UUID, viewer string) (*model.PostView, error)
	FindByAuthor(ctx context.Context, author string, viewer string) ([]*model.PostView, error)
	Feed(ctx context.Context, viewer string) ([]*model.PostView, error)
	Author(ctx context.Context, postID uuid.UUID) (string, error)
	ToggleLike(ctx context.Context, postID uuid.UUID, username string) (bool, error)
	Likes(ctx context.Context, postID uuid.UUID) ([]string, error)
	CreateComment(ctx context.Context, comment model.Comment) error
	Comments(ctx context.Context, postID uuid.UUID) ([]*model.CommentView, error)
}

type Activity interface {
	Append(ctx context.Context, affectedUser string, event model.ActivityEvent) error
	ListByUser(ctx context.Context, username string) ([]*model.ActivityEntry, error)
}

type PostgresRepository struct {
	User
	Follow
	Post
	Activity
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User:     newUserRepo(db),
		Follow:   newFollowRepo(db),
		Post:     newPostRepo(db),
		Activity: newActivityRepo(db),
	}
}
