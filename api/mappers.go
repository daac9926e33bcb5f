package api

import (
	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/dashboard"
	"github.com/tidepool-org/glucolog/journal"
	"github.com/tidepool-org/glucolog/readings"
)

func NewReadingDto(reading *readings.Reading) Reading {
	dto := Reading{
		Value:     reading.Value,
		Notes:     reading.Notes,
		Timestamp: reading.Timestamp,
	}
	if reading.Id != nil {
		dto.Id = reading.Id.Hex()
	}
	return dto
}

func NewReadingsDto(list []*readings.Reading) []Reading {
	dtos := make([]Reading, len(list))
	for i, reading := range list {
		dtos[i] = NewReadingDto(reading)
	}
	return dtos
}

func NewAnalysisDto(result analytics.AnalysisResult) Analysis {
	return Analysis{
		RiskLevel:       string(result.RiskLevel),
		Mean:            result.Mean,
		StdDev:          result.StdDev,
		Recommendations: result.Recommendations,
	}
}

func NewTrendSummaryDto(summary analytics.TrendSummary) TrendSummary {
	return TrendSummary{
		Window:      string(summary.Window),
		Count:       summary.Count,
		Mean:        summary.Mean,
		StdDev:      summary.StdDev,
		Min:         summary.Min,
		Max:         summary.Max,
		HourlyMeans: summary.HourlyMeans,
	}
}

func NewDistributionDto(buckets []analytics.Bucket) []DistributionBucket {
	dtos := make([]DistributionBucket, len(buckets))
	for i, bucket := range buckets {
		dtos[i] = DistributionBucket(bucket)
	}
	return dtos
}

func NewMedicationDto(medication *journal.Medication) Medication {
	dto := Medication{
		Name:   medication.Name,
		Dosage: medication.Dosage,
		Time:   medication.Time,
	}
	if medication.Id != nil {
		dto.Id = medication.Id.Hex()
	}
	return dto
}

func NewMedicationsDto(list []*journal.Medication) []Medication {
	dtos := make([]Medication, len(list))
	for i, medication := range list {
		dtos[i] = NewMedicationDto(medication)
	}
	return dtos
}

func NewMealDto(meal *journal.Meal) Meal {
	dto := Meal{
		Timestamp:   meal.Timestamp,
		Type:        meal.Type,
		Description: meal.Description,
		Carbs:       meal.Carbs,
	}
	if meal.Id != nil {
		dto.Id = meal.Id.Hex()
	}
	return dto
}

func NewMealsDto(list []*journal.Meal) []Meal {
	dtos := make([]Meal, len(list))
	for i, meal := range list {
		dtos[i] = NewMealDto(meal)
	}
	return dtos
}

func NewExerciseDto(exercise *journal.Exercise) Exercise {
	dto := Exercise{
		Timestamp: exercise.Timestamp,
		Activity:  exercise.Activity,
		Duration:  exercise.Duration,
		Intensity: exercise.Intensity,
	}
	if exercise.Id != nil {
		dto.Id = exercise.Id.Hex()
	}
	return dto
}

func NewExercisesDto(list []*journal.Exercise) []Exercise {
	dtos := make([]Exercise, len(list))
	for i, exercise := range list {
		dtos[i] = NewExerciseDto(exercise)
	}
	return dtos
}

func NewDashboardDto(overview *dashboard.Overview) Dashboard {
	return Dashboard{
		RecentReadings:    NewReadingsDto(overview.RecentReadings),
		RecentMedications: NewMedicationsDto(overview.RecentMedications),
		RecentMeals:       NewMealsDto(overview.RecentMeals),
		Analysis:          NewAnalysisDto(overview.Analysis),
	}
}
