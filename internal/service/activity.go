package service

import (
	"context"

	"github.com/lybamughees/mobile-project/internal/model"
	"github.com/lybamughees/mobile-project/internal/repository"
	"go.uber.org/zap"
)

type activityService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newActivityService(logger *zap.Logger, repo *repository.Repository) Activity {
	return &activityService{
		logger: logger,
		repo:   repo,
	}
}

func (s *activityService) List(ctx context.Context, username string) ([]*model.ActivityEntry, error) {
	entries, err := s.repo.Postgres.Activity.ListByUser(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get activity of user(%s) from postgres: %s", username, err.Error())
		return nil, ErrInternal
	}
	if entries == nil {
		entries = []*model.ActivityEntry{}
	}

	return entries, nil
}
