package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tidepool-org/glucolog/journal"
)

// AddMedication
// (POST /v1/medications)
func (h *Handler) CreateMedication(c echo.Context) error {
	dto := CreateMedication{}
	if err := c.Bind(&dto); err != nil {
		return err
	}

	created, err := h.journal.CreateMedication(c.Request().Context(), journal.Medication{
		Name:   dto.Name,
		Dosage: dto.Dosage,
		Time:   dto.Time,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, NewMedicationDto(created))
}

// ListMedications
// (GET /v1/medications)
func (h *Handler) ListMedications(c echo.Context) error {
	list, err := h.journal.ListMedications(c.Request().Context(), pagination(c))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, NewMedicationsDto(list))
}

// LogMeal
// (POST /v1/meals)
func (h *Handler) CreateMeal(c echo.Context) error {
	dto := CreateMeal{}
	if err := c.Bind(&dto); err != nil {
		return err
	}

	timestamp := time.Now()
	if dto.Timestamp != nil {
		timestamp = *dto.Timestamp
	}

	created, err := h.journal.CreateMeal(c.Request().Context(), journal.Meal{
		Timestamp:   timestamp,
		Type:        dto.Type,
		Description: dto.Description,
		Carbs:       dto.Carbs,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, NewMealDto(created))
}

// ListMeals
// (GET /v1/meals)
func (h *Handler) ListMeals(c echo.Context) error {
	list, err := h.journal.ListMeals(c.Request().Context(), pagination(c))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, NewMealsDto(list))
}

// LogExercise
// (POST /v1/exercise)
func (h *Handler) CreateExercise(c echo.Context) error {
	dto := CreateExercise{}
	if err := c.Bind(&dto); err != nil {
		return err
	}

	timestamp := time.Now()
	if dto.Timestamp != nil {
		timestamp = *dto.Timestamp
	}

	created, err := h.journal.CreateExercise(c.Request().Context(), journal.Exercise{
		Timestamp: timestamp,
		Activity:  dto.Activity,
		Duration:  dto.Duration,
		Intensity: dto.Intensity,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, NewExerciseDto(created))
}

// ListExercise
// (GET /v1/exercise)
func (h *Handler) ListExercises(c echo.Context) error {
	list, err := h.journal.ListExercises(c.Request().Context(), pagination(c))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, NewExercisesDto(list))
}
