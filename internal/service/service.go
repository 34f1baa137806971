package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/lybamughees/mobile-project/internal/avatar"
	"github.com/lybamughees/mobile-project/internal/dto"
	"github.com/lybamughees/mobile-project/internal/media"
	"github.com/lybamughees/mobile-project/internal/model"
	"github.com/lybamughees/mobile-project/internal/repository"
	"go.uber.org/zap"
)

type Auth interface {
	SignUp(ctx context.Context, signUpDto dto.SignUpDto) error
	SignIn(ctx context.Context, signInDto dto.SignInDto) (string, error)
	UserFromToken(ctx context.Context, token string) (*model.User, error)
}

type User interface {
	Profile(ctx context.Context, username string, viewer string) (*model.Profile, error)
	Search(ctx context.Context, query string, viewer string) ([]*model.SearchResult, error)
	Follow(ctx context.Context, follower string, followee string) error
	Followers(ctx context.Context, username string) ([]string, error)
	Following(ctx context.Context, username string) ([]string, error)
	UpdateBio(ctx context.Context, username string, bio string) error
	UpdateAvatar(ctx context.Context, username string, extension string, file io.Reader) error
}

type Post interface {
	Create(ctx context.Context, author string, createPostDto dto.CreatePostDto, photoExtension string, photo io.Reader) error
	Feed(ctx context.Context, viewer string) ([]*model.PostView, error)
	Get(ctx context.Context, postID uuid.UUID, viewer string) (*model.PostView, error)
	Likes(ctx context.Context, postID uuid.UUID) ([]string, error)
	Comments(ctx context.Context, postID uuid.UUID) ([]*model.CommentView, error)
	ToggleLike(ctx context.Context, postID uuid.UUID, username string) error
	AddComment(ctx context.Context, username string, createCommentDto dto.CreateCommentDto) error
}

type Activity interface {
	List(ctx context.Context, username string) ([]*model.ActivityEntry, error)
}

type Service struct {
	Auth
	User
	Post
	Activity
}

func New(logger *zap.Logger, repo *repository.Repository, mediaStore *media.Store, avatars *avatar.Client, community string) *Service {
	return &Service{
		Auth:     newAuthService(logger, repo, mediaStore, avatars, community),
		User:     newUserService(logger, repo, mediaStore),
		Post:     newPostService(logger, repo, mediaStore),
		Activity: newActivityService(logger, repo),
	}
}
