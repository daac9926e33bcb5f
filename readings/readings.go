package readings

import (
	"context"
	"errors"
	"time"

	"github.com/tidepool-org/glucolog/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("reading not found")
var ErrInvalidReading = errors.New("reading is invalid")

const (
	// Glucose meters report mg/dL in this range; anything else is a bad entry.
	MinValue = 0
	MaxValue = 500
)

//go:generate mockgen --build_flags=--mod=mod -source=./readings.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	Create(ctx context.Context, reading Reading) (*Reading, error)
	List(ctx context.Context, pagination store.Pagination) ([]*Reading, error)
	GetAll(ctx context.Context) ([]*Reading, error)
}

// Reading is a single blood glucose measurement. Readings are append-only
// and are never updated or deleted once stored.
type Reading struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty"`
	Value     int                 `bson:"value"`
	Notes     *string             `bson:"notes,omitempty"`
	Timestamp time.Time           `bson:"timestamp"`
}

func (r Reading) Validate() error {
	if r.Value < MinValue || r.Value > MaxValue {
		return ErrInvalidReading
	}
	if r.Timestamp.IsZero() {
		return ErrInvalidReading
	}
	return nil
}
