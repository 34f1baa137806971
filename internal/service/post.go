package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lybamughees/mobile-project/internal/dto"
	"github.com/lybamughees/mobile-project/internal/media"
	"github.com/lybamughees/mobile-project/internal/model"
	"github.com/lybamughees/mobile-project/internal/repository"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
	media  *media.Store
}

func newPostService(logger *zap.Logger, repo *repository.Repository, mediaStore *media.Store) Post {
	return &postService{
		logger: logger,
		repo:   repo,
		media:  mediaStore,
	}
}

// Create stores the post with its optional photo and location. The
// photo file is written first so the database transaction only commits
// rows whose media exists.
func (s *postService) Create(ctx context.Context, author string, createPostDto dto.CreatePostDto, photoExtension string, photo io.Reader) error {
	post := model.Post{
		ID:         uuid.New(),
		Username:   author,
		Content:    createPostDto.Content,
		DatePosted: time.Now(),
	}

	var imageURL *string
	if photo != nil {
		url := post.ID.String() + photoExtension
		if err := s.media.Save(url, photo); err != nil {
			s.logger.Sugar().Errorf("failed to save photo for post(%s): %s", post.ID, err.Error())
			return ErrInternal
		}
		imageURL = &url
	}

	var location *model.Location
	if createPostDto.Latitude != nil && createPostDto.Longitude != nil {
		location = &model.Location{
			Latitude:  *createPostDto.Latitude,
			Longitude: *createPostDto.Longitude,
		}
	}

	if err := s.repo.Postgres.Post.Create(ctx, post, imageURL, location); err != nil {
		s.logger.Sugar().Errorf("failed to create post(%s) in postgres: %s", post.ID, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) Feed(ctx context.Context, viewer string) ([]*model.PostView, error) {
	feed, err := s.repo.Postgres.Post.Feed(ctx, viewer)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get feed of user(%s) from postgres: %s", viewer, err.Error())
		return nil, ErrInternal
	}
	if feed == nil {
		feed = []*model.PostView{}
	}

	return feed, nil
}

func (s *postService) Get(ctx context.Context, postID uuid.UUID, viewer string) (*model.PostView, error) {
	post, err := s.repo.Postgres.Post.Find(ctx, postID, viewer)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}

		s.logger.Sugar().Errorf("failed to get post(%s) from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) Likes(ctx context.Context, postID uuid.UUID) ([]string, error) {
	likes, err := s.repo.Postgres.Post.Likes(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get likes of post(%s) from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return likes, nil
}

func (s *postService) Comments(ctx context.Context, postID uuid.UUID) ([]*model.CommentView, error) {
	comments, err := s.repo.Postgres.Post.Comments(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get comments of post(%s) from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}

// ToggleLike flips the viewer's like on the post. A new like is logged
// to the post author's activity; removing one logs nothing, and earlier
// entries are never retracted.
func (s *postService) ToggleLike(ctx context.Context, postID uuid.UUID, username string) error {
	liked, err := s.repo.Postgres.Post.ToggleLike(ctx, postID, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to toggle like(%s, %s) in postgres: %s", postID, username, err.Error())
		return ErrInternal
	}

	if liked {
		s.recordPostActivity(ctx, postID, model.NewLikeActivity(username, postID))
	}

	return nil
}

func (s *postService) AddComment(ctx context.Context, username string, createCommentDto dto.CreateCommentDto) error {
	comment := model.Comment{
		ID:         uuid.New(),
		PostID:     createCommentDto.PostID,
		Username:   username,
		Content:    createCommentDto.Content,
		DatePosted: time.Now(),
	}
	if err := s.repo.Postgres.Post.CreateComment(ctx, comment); err != nil {
		s.logger.Sugar().Errorf("failed to create comment on post(%s) in postgres: %s", comment.PostID, err.Error())
		return ErrInternal
	}

	s.recordPostActivity(ctx, createCommentDto.PostID, model.NewCommentActivity(username, createCommentDto.PostID))
	return nil
}

// recordPostActivity attributes the event to the post's author. If the
// post is gone by the time we look it up, the entry is simply dropped;
// logging is best-effort and never fails the caller.
func (s *postService) recordPostActivity(ctx context.Context, postID uuid.UUID, event model.ActivityEvent) {
	author, err := s.repo.Postgres.Post.Author(ctx, postID)
	if err != nil {
		if err != pgx.ErrNoRows {
			s.logger.Sugar().Errorf("failed to get author of post(%s) from postgres: %s", postID, err.Error())
		}
		return
	}

	if err := s.repo.Postgres.Activity.Append(ctx, author, event); err != nil {
		s.logger.Sugar().Errorf("failed to log %s activity on post(%s): %s", event.Kind(), postID, err.Error())
	}
}
