package readings

import (
	"context"
	"time"

	"github.com/tidepool-org/glucolog/store"
	"go.uber.org/zap"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) Create(ctx context.Context, reading Reading) (*Reading, error) {
	if err := reading.Validate(); err != nil {
		return nil, err
	}

	// Timestamps are stored with second precision
	reading.Timestamp = reading.Timestamp.Truncate(time.Second)

	created, err := s.repo.Create(ctx, reading)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("created glucose reading", "value", created.Value, "timestamp", created.Timestamp)
	return created, nil
}

func (s *service) List(ctx context.Context, pagination store.Pagination) ([]*Reading, error) {
	return s.repo.List(ctx, pagination)
}

func (s *service) GetAll(ctx context.Context) ([]*Reading, error) {
	return s.repo.GetAll(ctx)
}
