// Package journal records the non-glucose entries of the health log:
// medications, meals and exercise. These are pass-through records; no
// analytics are derived from them.
package journal

import (
	"context"
	"errors"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/tidepool-org/glucolog/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidMedication = errors.New("medication entry is invalid")
var ErrInvalidMeal = errors.New("meal entry is invalid")
var ErrInvalidExercise = errors.New("exercise entry is invalid")

var (
	MealTypes   = mapset.NewSet("breakfast", "lunch", "dinner", "snack")
	Intensities = mapset.NewSet("low", "moderate", "high")
)

const (
	MaxMealCarbs        = 200
	MaxExerciseDuration = 300
)

//go:generate mockgen --build_flags=--mod=mod -source=./journal.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	CreateMedication(ctx context.Context, medication Medication) (*Medication, error)
	ListMedications(ctx context.Context, pagination store.Pagination) ([]*Medication, error)
	CreateMeal(ctx context.Context, meal Meal) (*Meal, error)
	ListMeals(ctx context.Context, pagination store.Pagination) ([]*Meal, error)
	CreateExercise(ctx context.Context, exercise Exercise) (*Exercise, error)
	ListExercises(ctx context.Context, pagination store.Pagination) ([]*Exercise, error)
}

type Medication struct {
	Id     *primitive.ObjectID `bson:"_id,omitempty"`
	Name   string              `bson:"name"`
	Dosage string              `bson:"dosage"`
	Time   string              `bson:"time"`
}

func (m Medication) Validate() error {
	if m.Name == "" || m.Dosage == "" {
		return ErrInvalidMedication
	}
	if _, err := time.Parse("15:04", m.Time); err != nil {
		return ErrInvalidMedication
	}
	return nil
}

type Meal struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp   time.Time           `bson:"timestamp"`
	Type        string              `bson:"type"`
	Description string              `bson:"description"`
	Carbs       int                 `bson:"carbs"`
}

func (m Meal) Validate() error {
	if !MealTypes.Contains(m.Type) {
		return ErrInvalidMeal
	}
	if m.Carbs < 0 || m.Carbs > MaxMealCarbs {
		return ErrInvalidMeal
	}
	if m.Timestamp.IsZero() {
		return ErrInvalidMeal
	}
	return nil
}

type Exercise struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time           `bson:"timestamp"`
	Activity  string              `bson:"activity"`
	Duration  int                 `bson:"duration"`
	Intensity string              `bson:"intensity"`
}

func (e Exercise) Validate() error {
	if e.Activity == "" {
		return ErrInvalidExercise
	}
	if e.Duration < 0 || e.Duration > MaxExerciseDuration {
		return ErrInvalidExercise
	}
	if !Intensities.Contains(e.Intensity) {
		return ErrInvalidExercise
	}
	if e.Timestamp.IsZero() {
		return ErrInvalidExercise
	}
	return nil
}
