package readings

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
	readingsCollectionName = "readings"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(readingsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "timestamp", Value: 1},
			},
			Options: options.Index().
				SetName("ReadingTimestamp"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, reading Reading) (*Reading, error) {
	res, err := r.collection.InsertOne(ctx, reading)
	if err != nil {
		return nil, fmt.Errorf("error creating reading: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.get(ctx, id)
}

func (r *repository) List(ctx context.Context, pagination store.Pagination) ([]*Reading, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing readings: %w", err)
	}

	var result []*Reading
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding readings list: %w", err)
	}

	return result, nil
}

// GetAll returns the full reading history in insertion order. Object ids
// are monotonic, so sorting by _id preserves the order readings were
// appended in.
func (r *repository) GetAll(ctx context.Context) ([]*Reading, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing readings: %w", err)
	}

	var result []*Reading
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding readings list: %w", err)
	}

	return result, nil
}

func (r *repository) get(ctx context.Context, id primitive.ObjectID) (*Reading, error) {
	selector := bson.M{
		"_id": id,
	}

	reading := &Reading{}
	err := r.collection.FindOne(ctx, selector).Decode(reading)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return reading, nil
}
