package journal

import (
	"context"
	"fmt"

	"github.com/tidepool-org/glucolog/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	medicationsCollectionName = "medications"
	mealsCollectionName       = "meals"
	exerciseCollectionName    = "exercise"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		medications: db.Collection(medicationsCollectionName),
		meals:       db.Collection(mealsCollectionName),
		exercise:    db.Collection(exerciseCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	medications *mongo.Collection
	meals       *mongo.Collection
	exercise    *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	for _, c := range []*mongo.Collection{r.meals, r.exercise} {
		_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "timestamp", Value: 1},
				},
				Options: options.Index().
					SetName("EntryTimestamp"),
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) CreateMedication(ctx context.Context, medication Medication) (*Medication, error) {
	res, err := r.medications.InsertOne(ctx, medication)
	if err != nil {
		return nil, fmt.Errorf("error creating medication: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	medication.Id = &id
	return &medication, nil
}

func (r *repository) ListMedications(ctx context.Context, pagination store.Pagination) ([]*Medication, error) {
	cursor, err := r.medications.Find(ctx, bson.M{}, listOptions(pagination))
	if err != nil {
		return nil, fmt.Errorf("error listing medications: %w", err)
	}

	var result []*Medication
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding medications list: %w", err)
	}

	return result, nil
}

func (r *repository) CreateMeal(ctx context.Context, meal Meal) (*Meal, error) {
	res, err := r.meals.InsertOne(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("error creating meal: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	meal.Id = &id
	return &meal, nil
}

func (r *repository) ListMeals(ctx context.Context, pagination store.Pagination) ([]*Meal, error) {
	cursor, err := r.meals.Find(ctx, bson.M{}, listOptions(pagination))
	if err != nil {
		return nil, fmt.Errorf("error listing meals: %w", err)
	}

	var result []*Meal
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding meals list: %w", err)
	}

	return result, nil
}

func (r *repository) CreateExercise(ctx context.Context, exercise Exercise) (*Exercise, error) {
	res, err := r.exercise.InsertOne(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("error creating exercise entry: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	exercise.Id = &id
	return &exercise, nil
}

func (r *repository) ListExercises(ctx context.Context, pagination store.Pagination) ([]*Exercise, error) {
	cursor, err := r.exercise.Find(ctx, bson.M{}, listOptions(pagination))
	if err != nil {
		return nil, fmt.Errorf("error listing exercise entries: %w", err)
	}

	var result []*Exercise
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding exercise list: %w", err)
	}

	return result, nil
}

// Listings are newest first
func listOptions(pagination store.Pagination) *options.FindOptions {
	return options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "_id", Value: -1}})
}
