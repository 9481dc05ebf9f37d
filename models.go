package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+dateLayout+`"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

const dateLayout = "2006-01-02"

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// entryKind is the log_entry_kind enum: which diary a row belongs to.
type entryKind string

const (
	kindFood     entryKind = "food"
	kindExercise entryKind = "exercise"
)

// logEntry maps to log_entries. Food rows carry Meal and Serving; exercise
// rows carry DurationMinutes, Category and Intensity. Calories are always
// positive; Kind decides whether they count as consumed or burned.
type logEntry struct {
	ID              int        `json:"id"                  db:"id"`
	UserID          int        `json:"user_id"             db:"user_id"`
	Date            DateOnly   `json:"date"                db:"date"`
	Kind            entryKind  `json:"kind"                db:"kind"`
	Name            string     `json:"name"                db:"name"`
	Calories        int        `json:"calories"            db:"calories"`
	Meal            *string    `json:"meal,omitempty"      db:"meal"`
	Serving         *string    `json:"serving,omitempty"   db:"serving"`
	DurationMinutes int        `json:"duration_minutes"    db:"duration_minutes"`
	Category        *string    `json:"category,omitempty"  db:"category"`
	Intensity       *string    `json:"intensity,omitempty" db:"intensity"`
	CreatedAt       *time.Time `json:"created_at"          db:"created_at"`
}

// profile maps to profiles. One row per user. Body fields are nullable so a
// freshly created user still gets a usable row; the manual CalorieGoal is
// used until enough of them are filled in to compute one.
type profile struct {
	UserID          int      `json:"user_id"           db:"user_id"`
	Gender          *string  `json:"gender"            db:"gender"`
	Age             *int     `json:"age"               db:"age"`
	HeightCm        *float64 `json:"height_cm"         db:"height_cm"`
	CurrentWeightKg *float64 `json:"current_weight_kg" db:"current_weight_kg"`
	StartWeightKg   *float64 `json:"start_weight_kg"   db:"start_weight_kg"`
	GoalWeightKg    *float64 `json:"goal_weight_kg"    db:"goal_weight_kg"`
	ActivityLevel   *string  `json:"activity_level"    db:"activity_level"`
	Goal            *string  `json:"goal"              db:"goal"`
	Units           string   `json:"units"             db:"units"`
	CalorieGoal     int      `json:"calorie_goal"      db:"calorie_goal"`

	// Computed fields, populated server-side from the body fields. Not stored.
	// db:"-" tells RowToStructByName to skip these during scanning.
	ComputedBMR         *int     `json:"computed_bmr,omitempty"          db:"-"`
	ComputedTDEE        *int     `json:"computed_tdee,omitempty"         db:"-"`
	ComputedCalorieGoal *int     `json:"computed_calorie_goal,omitempty" db:"-"`
	WeightProgress      *float64 `json:"weight_progress,omitempty"       db:"-"`
}

// weightEntry maps to weight_log. UNIQUE(user_id, date).
type weightEntry struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	Date      DateOnly   `json:"date"       db:"date"`
	WeightKg  float64    `json:"weight_kg"  db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// dailySummary is the response shape for GET /api/daily.
type dailySummary struct {
	Date              string         `json:"date"`
	CalorieGoal       int            `json:"calorie_goal"`
	CalorieGoalSource string         `json:"calorie_goal_source"` // "computed" or "manual"
	CaloriesConsumed  int            `json:"calories_consumed"`
	CaloriesBurned    int            `json:"calories_burned"`
	ExerciseMinutes   int            `json:"exercise_minutes"`
	CaloriesRemaining int            `json:"calories_remaining"`
	MealCalories      map[string]int `json:"meal_calories"`
	WeightProgress    *float64       `json:"weight_progress"`
	FoodEntries       []logEntry     `json:"food_entries"`
	ExerciseEntries   []logEntry     `json:"exercise_entries"`
}

// progressDay is one day's entry in the GET /api/progress response.
type progressDay struct {
	Date              string `json:"date"`
	CalorieGoal       int    `json:"calorie_goal"`
	CaloriesConsumed  int    `json:"calories_consumed"`
	CaloriesBurned    int    `json:"calories_burned"`
	ExerciseMinutes   int    `json:"exercise_minutes"`
	CaloriesRemaining int    `json:"calories_remaining"`
}

// progressStats aggregates a progress range. Averages are integer kcal.
type progressStats struct {
	DaysTracked       int `json:"days_tracked"`
	DaysOnBudget      int `json:"days_on_budget"`
	AvgConsumed       int `json:"avg_calories_consumed"`
	AvgBurned         int `json:"avg_calories_burned"`
	TotalExerciseMins int `json:"total_exercise_minutes"`
}

// lifetimeStats is the all-time summary on the profile screen.
type lifetimeStats struct {
	TotalWorkouts        int `json:"total_workouts"         db:"total_workouts"`
	TotalCaloriesBurned  int `json:"total_calories_burned"  db:"total_calories_burned"`
	TotalExerciseMinutes int `json:"total_exercise_minutes" db:"total_exercise_minutes"`
	DaysLogged           int `json:"days_logged"            db:"days_logged"`
}

type progressResponse struct {
	Days  []progressDay `json:"days"`
	Stats progressStats `json:"stats"`
}

// createFoodEntryRequest is the request body for POST /api/food-entries.
type createFoodEntryRequest struct {
	Date     string  `json:"date"`
	Meal     string  `json:"meal"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Serving  *string `json:"serving"`
}

// createExerciseEntryRequest is the request body for POST /api/exercise-entries.
// Calories is only consulted when Name is not in the exercise catalog.
type createExerciseEntryRequest struct {
	Date            string  `json:"date"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Calories        *int    `json:"calories"`
	Intensity       *string `json:"intensity"`
}

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers: only non-nil fields get written to the database.
type patchProfileRequest struct {
	Gender          *string  `json:"gender"`
	Age             *int     `json:"age"`
	HeightCm        *float64 `json:"height_cm"`
	CurrentWeightKg *float64 `json:"current_weight_kg"`
	StartWeightKg   *float64 `json:"start_weight_kg"`
	GoalWeightKg    *float64 `json:"goal_weight_kg"`
	ActivityLevel   *string  `json:"activity_level"`
	Goal            *string  `json:"goal"`
	Units           *string  `json:"units"`
	CalorieGoal     *int     `json:"calorie_goal"`
}
