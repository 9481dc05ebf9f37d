package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lg/fitness-tracker-api/fitcalc"
)

// meals lists the food diary sections in display order.
var meals = []string{"breakfast", "lunch", "dinner", "snack"}

// toLogged projects stored rows onto the fitcalc aggregation input.
func toLogged(entries []logEntry) []fitcalc.LoggedEntry {
	out := make([]fitcalc.LoggedEntry, len(entries))
	for i, e := range entries {
		out[i] = fitcalc.LoggedEntry{
			Name:            e.Name,
			Calories:        e.Calories,
			DurationMinutes: e.DurationMinutes,
		}
		if e.CreatedAt != nil {
			out[i].Timestamp = *e.CreatedAt
		}
	}
	return out
}

// mealCalories totals food calories per meal. Every meal is present, even at 0.
func mealCalories(food []logEntry) map[string]int {
	byMeal := make(map[string][]fitcalc.LoggedEntry, len(meals))
	for _, e := range food {
		if e.Meal == nil {
			continue
		}
		byMeal[*e.Meal] = append(byMeal[*e.Meal], fitcalc.LoggedEntry{Calories: e.Calories})
	}
	totals := make(map[string]int, len(meals))
	for _, m := range meals {
		totals[m] = fitcalc.SumCalories(byMeal[m])
	}
	return totals
}

// getDailySummary returns the dashboard for a date: the day's food and
// exercise entries, per-meal totals, and the calorie balance.
// GET /api/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailySummary(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", h.today())

	// Validate date format before querying; an invalid value silently returns no rows.
	if !validDate(date) {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	food, err := h.store.FetchEntriesForDate(c, userID, date, kindFood)
	if err != nil {
		logrus.Errorf("[getDailySummary] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch food entries")
		return
	}
	exercise, err := h.store.FetchEntriesForDate(c, userID, date, kindExercise)
	if err != nil {
		logrus.Errorf("[getDailySummary] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch exercise entries")
		return
	}
	// Ensure entries are empty arrays (not null) in JSON
	if food == nil {
		food = []logEntry{}
	}
	if exercise == nil {
		exercise = []logEntry{}
	}

	p, err := h.loadProfile(c, userID)
	if err != nil {
		logrus.Errorf("[getDailySummary] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	goal, source := effectiveCalorieGoal(p)
	totals := fitcalc.Summarize(goal, toLogged(food), toLogged(exercise))

	c.JSON(http.StatusOK, dailySummary{
		Date:              date,
		CalorieGoal:       totals.CalorieGoal,
		CalorieGoalSource: source,
		CaloriesConsumed:  totals.CaloriesConsumed,
		CaloriesBurned:    totals.CaloriesBurned,
		ExerciseMinutes:   totals.ExerciseMinutes,
		CaloriesRemaining: totals.CaloriesRemaining,
		MealCalories:      mealCalories(food),
		WeightProgress:    p.WeightProgress,
		FoodEntries:       food,
		ExerciseEntries:   exercise,
	})
}

// getProgress returns per-day calorie totals and aggregate stats for a date range.
// GET /api/progress?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params required.
// Only days with logged entries are returned (no gap-filling, the frontend handles that).
// Every day is measured against today's calorie goal; goals are not stored per day.
func (h *Handler) getProgress(c *gin.Context) {
	userID := c.GetInt("user_id")
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	p, err := h.loadProfile(c, userID)
	if err != nil {
		logrus.Errorf("[getProgress] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	goal, _ := effectiveCalorieGoal(p)

	entries, err := h.store.FetchEntriesInRange(c, userID, start, end)
	if err != nil {
		logrus.Errorf("[getProgress] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch progress data")
		return
	}

	// Group by date, preserving the store's date order.
	type dayEntries struct{ food, exercise []logEntry }
	var order []string
	byDate := map[string]*dayEntries{}
	for _, e := range entries {
		d := e.Date.Format(dateLayout)
		de, seen := byDate[d]
		if !seen {
			de = &dayEntries{}
			byDate[d] = de
			order = append(order, d)
		}
		if e.Kind == kindExercise {
			de.exercise = append(de.exercise, e)
		} else {
			de.food = append(de.food, e)
		}
	}

	days := make([]progressDay, 0, len(order))
	var stats progressStats
	for _, d := range order {
		t := fitcalc.Summarize(goal, toLogged(byDate[d].food), toLogged(byDate[d].exercise))
		days = append(days, progressDay{
			Date:              d,
			CalorieGoal:       t.CalorieGoal,
			CaloriesConsumed:  t.CaloriesConsumed,
			CaloriesBurned:    t.CaloriesBurned,
			ExerciseMinutes:   t.ExerciseMinutes,
			CaloriesRemaining: t.CaloriesRemaining,
		})
		stats.DaysTracked++
		if t.CaloriesRemaining >= 0 {
			stats.DaysOnBudget++
		}
		stats.AvgConsumed += t.CaloriesConsumed
		stats.AvgBurned += t.CaloriesBurned
		stats.TotalExerciseMins += t.ExerciseMinutes
	}

	// Convert totals to averages.
	if stats.DaysTracked > 0 {
		stats.AvgConsumed /= stats.DaysTracked
		stats.AvgBurned /= stats.DaysTracked
	}

	c.JSON(http.StatusOK, progressResponse{Days: days, Stats: stats})
}

// getLifetimeStats returns all-time workout totals for the profile screen.
// GET /api/stats.
func (h *Handler) getLifetimeStats(c *gin.Context) {
	userID := c.GetInt("user_id")
	stats, err := h.store.FetchLifetimeStats(c, userID)
	if err != nil {
		logrus.Errorf("[getLifetimeStats] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
