package test

import (
	"time"

	"github.com/tidepool-org/glucolog/pointer"
	"github.com/tidepool-org/glucolog/readings"
	"github.com/tidepool-org/glucolog/store/test"
)

func RandomReading() readings.Reading {
	return readings.Reading{
		Value:     test.Faker.IntBetween(readings.MinValue, readings.MaxValue),
		Notes:     pointer.FromAny(test.Faker.Lorem().Sentence(3)),
		Timestamp: RandomTimestamp(),
	}
}

func RandomTimestamp() time.Time {
	minutesAgo := test.Faker.IntBetween(0, 60*24*30)
	return time.Now().Add(-time.Duration(minutesAgo) * time.Minute).Truncate(time.Second)
}
