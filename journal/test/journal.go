package test

import (
	"fmt"
	"time"

	"github.com/tidepool-org/glucolog/journal"
	"github.com/tidepool-org/glucolog/store/test"
)

func RandomMedication() journal.Medication {
	return journal.Medication{
		Name:   test.Faker.Lorem().Word(),
		Dosage: fmt.Sprintf("%dmg", test.Faker.IntBetween(1, 500)),
		Time:   fmt.Sprintf("%02d:%02d", test.Faker.IntBetween(0, 23), test.Faker.IntBetween(0, 59)),
	}
}

func RandomMeal() journal.Meal {
	return journal.Meal{
		Timestamp:   randomTimestamp(),
		Type:        test.Faker.RandomStringElement(journal.MealTypes.ToSlice()),
		Description: test.Faker.Lorem().Sentence(4),
		Carbs:       test.Faker.IntBetween(0, journal.MaxMealCarbs),
	}
}

func RandomExercise() journal.Exercise {
	return journal.Exercise{
		Timestamp: randomTimestamp(),
		Activity:  test.Faker.Lorem().Word(),
		Duration:  test.Faker.IntBetween(0, journal.MaxExerciseDuration),
		Intensity: test.Faker.RandomStringElement(journal.Intensities.ToSlice()),
	}
}

func randomTimestamp() time.Time {
	minutesAgo := test.Faker.IntBetween(0, 60*24*30)
	return time.Now().Add(-time.Duration(minutesAgo) * time.Minute).Truncate(time.Second)
}
