package main

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lg/fitness-tracker-api/fitcalc"
)

// validMeals is the set of allowed values for log_entries.meal.
// Reject unknown values with 400 rather than letting the DB return a cryptic 500.
var validMeals = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

var validIntensities = map[string]bool{
	"Low":      true,
	"Moderate": true,
	"High":     true,
}

// maxIntColumn is the largest value the INTEGER columns of log_entries hold.
const maxIntColumn = math.MaxInt32

// otherCategory labels exercises that aren't in the catalog.
const otherCategory = "Other"

// entryDate resolves the optional date in a create request, defaulting to today.
func (h *Handler) entryDate(raw string) (DateOnly, bool) {
	if raw == "" {
		raw = h.today()
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return DateOnly{}, false
	}
	return DateOnly{t}, true
}

// createFoodEntry inserts a food diary row.
// POST /api/food-entries. Defaults date to today if omitted.
func (h *Handler) createFoodEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createFoodEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}
	if !validMeals[body.Meal] {
		apiError(c, http.StatusBadRequest, "meal must be one of: breakfast, lunch, dinner, snack")
		return
	}
	if body.Calories < 0 {
		apiError(c, http.StatusBadRequest, "calories must not be negative")
		return
	}
	if body.Calories > maxIntColumn {
		apiError(c, http.StatusBadRequest, "calories is too large")
		return
	}
	date, ok := h.entryDate(body.Date)
	if !ok {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	meal := body.Meal
	entry, err := h.store.InsertEntry(c, userID, logEntry{
		Date:     date,
		Kind:     kindFood,
		Name:     body.Name,
		Calories: body.Calories,
		Meal:     &meal,
		Serving:  body.Serving,
	})
	if err != nil {
		logrus.Errorf("[createFoodEntry] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to create food entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// createExerciseEntry inserts an exercise row. Calories come from the
// exercise catalog; for an exercise the catalog doesn't know, the client must
// send a manual calories value instead.
// POST /api/exercise-entries.
func (h *Handler) createExerciseEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createExerciseEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}
	if body.Intensity != nil && !validIntensities[*body.Intensity] {
		apiError(c, http.StatusBadRequest, "intensity must be one of: Low, Moderate, High")
		return
	}
	date, ok := h.entryDate(body.Date)
	if !ok {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	if body.DurationMinutes > maxIntColumn {
		apiError(c, http.StatusBadRequest, "duration_minutes is too large")
		return
	}

	calories, err := fitcalc.EstimateCalories(h.catalog, body.Name, body.DurationMinutes)
	category := otherCategory
	switch {
	case err == nil:
		category = h.catalog[body.Name].Category
	case errors.Is(err, fitcalc.ErrUnknownExercise):
		if body.Calories == nil {
			apiError(c, http.StatusBadRequest, "unknown exercise; provide calories")
			return
		}
		if *body.Calories < 0 {
			apiError(c, http.StatusBadRequest, "calories must not be negative")
			return
		}
		if *body.Calories > maxIntColumn {
			apiError(c, http.StatusBadRequest, "calories is too large")
			return
		}
		calories = *body.Calories
	case errors.Is(err, fitcalc.ErrInvalidMeasurement) && body.DurationMinutes < 0:
		apiError(c, http.StatusBadRequest, "duration_minutes must not be negative")
		return
	case errors.Is(err, fitcalc.ErrInvalidMeasurement):
		apiError(c, http.StatusBadRequest, "duration_minutes is too large")
		return
	default:
		logrus.Errorf("[createExerciseEntry] estimate %q: %v", body.Name, err)
		apiError(c, http.StatusInternalServerError, "failed to estimate calories")
		return
	}
	entry, err := h.store.InsertEntry(c, userID, logEntry{
		Date:            date,
		Kind:            kindExercise,
		Name:            body.Name,
		Calories:        calories,
		DurationMinutes: body.DurationMinutes,
		Category:        &category,
		Intensity:       body.Intensity,
	})
	if err != nil {
		logrus.Errorf("[createExerciseEntry] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to create exercise entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// deleteFoodEntry removes a food row. DELETE /api/food-entries/:id. Returns 204 on success.
func (h *Handler) deleteFoodEntry(c *gin.Context) {
	h.deleteEntry(c, kindFood, "food entry")
}

// deleteExerciseEntry removes an exercise row. DELETE /api/exercise-entries/:id.
func (h *Handler) deleteExerciseEntry(c *gin.Context) {
	h.deleteEntry(c, kindExercise, "exercise entry")
}

// deleteEntry enforces ownership and kind: a food id can't be deleted through
// the exercise route and vice versa.
func (h *Handler) deleteEntry(c *gin.Context, kind entryKind, what string) {
	userID := c.GetInt("user_id")
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleteResult(c, h.store.DeleteEntry(c, userID, kind, id), what)
}
