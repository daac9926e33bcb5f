package api

import "time"

type Reading struct {
	Id        string    `json:"id"`
	Value     int       `json:"value"`
	Notes     *string   `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type CreateReading struct {
	Value     int        `json:"value"`
	Notes     *string    `json:"notes,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type Analysis struct {
	RiskLevel       string   `json:"riskLevel"`
	Mean            *float64 `json:"mean,omitempty"`
	StdDev          *float64 `json:"stdDev,omitempty"`
	Recommendations []string `json:"recommendations"`
}

type TrendSummary struct {
	Window      string          `json:"window"`
	Count       int             `json:"count"`
	Mean        *float64        `json:"mean,omitempty"`
	StdDev      *float64        `json:"stdDev,omitempty"`
	Min         *float64        `json:"min,omitempty"`
	Max         *float64        `json:"max,omitempty"`
	HourlyMeans map[int]float64 `json:"hourlyMeans,omitempty"`
}

type DistributionBucket struct {
	Lo    int `json:"lo"`
	Hi    int `json:"hi"`
	Count int `json:"count"`
}

type Medication struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"`
}

type CreateMedication struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"`
}

type Meal struct {
	Id          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Carbs       int       `json:"carbs"`
}

type CreateMeal struct {
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Carbs       int        `json:"carbs"`
}

type Exercise struct {
	Id        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Activity  string    `json:"activity"`
	Duration  int       `json:"duration"`
	Intensity string    `json:"intensity"`
}

type CreateExercise struct {
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Activity  string     `json:"activity"`
	Duration  int        `json:"duration"`
	Intensity string     `json:"intensity"`
}

type Dashboard struct {
	RecentReadings    []Reading    `json:"recentReadings"`
	RecentMedications []Medication `json:"recentMedications"`
	RecentMeals       []Meal       `json:"recentMeals"`
	Analysis          Analysis     `json:"analysis"`
}
