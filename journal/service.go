package journal

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

func (s *service) CreateMedication(ctx context.Context, medication Medication) (*Medication, error) {
	if err := medication.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateMedication(ctx, medication)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("added medication", "name", created.Name)
	return created, nil
}

func (s *service) ListMedications(ctx context.Context, pagination store.Pagination) ([]*Medication, error) {
	return s.repo.ListMedications(ctx, pagination)
}

func (s *service) CreateMeal(ctx context.Context, meal Meal) (*Meal, error) {
	if err := meal.Validate(); err != nil {
		return nil, err
	}
	meal.Timestamp = meal.Timestamp.Truncate(time.Second)
	created, err := s.repo.CreateMeal(ctx, meal)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("logged meal", "type", created.Type, "carbs", created.Carbs)
	return created, nil
}

func (s *service) ListMeals(ctx context.Context, pagination store.Pagination) ([]*Meal, error) {
	return s.repo.ListMeals(ctx, pagination)
}

func (s *service) CreateExercise(ctx context.Context, exercise Exercise) (*Exercise, error) {
	if err := exercise.Validate(); err != nil {
		return nil, err
	}
	exercise.Timestamp = exercise.Timestamp.Truncate(time.Second)
	created, err := s.repo.CreateExercise(ctx, exercise)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("logged exercise", "activity", created.Activity, "duration", created.Duration)
	return created, nil
}

func (s *service) ListExercises(ctx context.Context, pagination store.Pagination) ([]*Exercise, error) {
	return s.repo.ListExercises(ctx, pagination)
}
