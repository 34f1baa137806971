package service

import (
	"context"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lybamughees/mobile-project/internal/media"
	"github.com/lybamughees/mobile-project/internal/model"
	"github.com/lybamughees/mobile-project/internal/repository"
	"github.com/lybamughees/mobile-project/internal/repository/redisrepo"
	"go.uber.org/zap"
)

type userService struct {
	logger *zap.Logger
	repo   *repository.Repository
	media  *media.Store
}

func newUserService(logger *zap.Logger, repo *repository.Repository, mediaStore *media.Store) User {
	return &userService{
		logger: logger,
		repo:   repo,
		media:  mediaStore,
	}
}

// Profile assembles the user row, follow counts and the user's posts.
// The liked flag on each post is relative to the viewer, not the
// profile owner.
func (s *userService) Profile(ctx context.Context, username string, viewer string) (*model.Profile, error) {
	profile, err := s.repo.Postgres.User.Profile(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}

		s.logger.Sugar().Errorf("failed to get profile(%s) from postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Postgres.Post.FindByAuthor(ctx, username, viewer)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get posts of user(%s) from postgres: %s", username, err.Error())
		return nil, ErrInternal
	}
	if posts == nil {
		posts = []*model.PostView{}
	}
	profile.Posts = posts

	return profile, nil
}

func (s *userService) Search(ctx context.Context, query string, viewer string) ([]*model.SearchResult, error) {
	results, err := s.repo.Postgres.User.Search(ctx, query, viewer)
	if err != nil {
		s.logger.Sugar().Errorf("failed to search users(%s) in postgres: %s", query, err.Error())
		return nil, ErrInternal
	}

	return results, nil
}

// Follow creates the edge in both directions and logs a follow entry
// for the followee. Re-following is a no-op and logs nothing.
func (s *userService) Follow(ctx context.Context, follower string, followee string) error {
	followee = strings.ToLower(strings.TrimSpace(followee))

	exists, err := s.repo.Postgres.User.Exists(ctx, followee)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check user(%s) existence in postgres: %s", followee, err.Error())
		return ErrInternal
	}
	if !exists {
		return ErrNotFound
	}

	created, err := s.repo.Postgres.Follow.Follow(ctx, follower, followee)
	if err != nil {
		s.logger.Sugar().Errorf("failed to follow user(%s -> %s) in postgres: %s", follower, followee, err.Error())
		return ErrInternal
	}

	if created {
		if err := s.repo.Postgres.Activity.Append(ctx, followee, model.NewFollowActivity(follower)); err != nil {
			s.logger.Sugar().Errorf("failed to log follow activity(%s -> %s): %s", follower, followee, err.Error())
		}
	}

	return nil
}

func (s *userService) Followers(ctx context.Context, username string) ([]string, error) {
	followers, err := s.repo.Postgres.Follow.Followers(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get followers of user(%s) from postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	return followers, nil
}

func (s *userService) Following(ctx context.Context, username string) ([]string, error) {
	following, err := s.repo.Postgres.Follow.Following(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get following of user(%s) from postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	return following, nil
}

func (s *userService) UpdateBio(ctx context.Context, username string, bio string) error {
	if err := s.repo.Postgres.User.UpdateBio(ctx, username, bio); err != nil {
		s.logger.Sugar().Errorf("failed to update bio of user(%s) in postgres: %s", username, err.Error())
		return ErrInternal
	}

	s.invalidateSession(ctx, username)
	return nil
}

// UpdateAvatar stores the uploaded image as {username}{extension} and
// points the user row at it.
func (s *userService) UpdateAvatar(ctx context.Context, username string, extension string, file io.Reader) error {
	avatarURL := username + extension
	if err := s.media.Save(avatarURL, file); err != nil {
		s.logger.Sugar().Errorf("failed to save avatar of user(%s): %s", username, err.Error())
		return ErrInternal
	}

	if err := s.repo.Postgres.User.UpdateAvatar(ctx, username, avatarURL); err != nil {
		s.logger.Sugar().Errorf("failed to update avatar of user(%s) in postgres: %s", username, err.Error())
		return ErrInternal
	}

	s.invalidateSession(ctx, username)
	return nil
}

func (s *userService) invalidateSession(ctx context.Context, username string) {
	if err := s.repo.Redis.Del(ctx, redisrepo.SessionUserKey(username)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete session user(%s) from redis: %s", username, err.Error())
	}
}
