// Package fitcalc holds the pure calculations behind the fitness tracker:
// unit conversion, BMR/TDEE/calorie goal, weight progress, daily totals and
// exercise calorie estimates. Nothing here does I/O or keeps state, so every
// function is safe to call concurrently.
package fitcalc

import "time"

// Gender selects the BMR equation.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel selects the TDEE multiplier. See activityMultipliers.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// Goal picks the direction of the calorie adjustment.
type Goal string

const (
	LoseWeight Goal = "lose_weight"
	Maintain   Goal = "maintain"
	GainWeight Goal = "gain_weight"
)

// UserMetrics is the body profile a BMR calculation needs. Callers build a
// fresh value per call; nothing keeps a reference to it.
type UserMetrics struct {
	Gender          Gender
	Age             int
	HeightCm        float64
	CurrentWeightKg float64
	ActivityLevel   ActivityLevel
	Goal            Goal
}

// WeightProgress has no ordering requirement: GoalWeight may sit above
// StartWeight (gaining) or below it (losing).
type WeightProgress struct {
	StartWeight   float64
	CurrentWeight float64
	GoalWeight    float64
}

// LoggedEntry is one food or exercise row for a day. DurationMinutes is zero
// for food.
type LoggedEntry struct {
	Name            string
	Calories        int
	DurationMinutes int
	Timestamp       time.Time
}

// ExerciseCatalogEntry is one row of the static exercise reference table.
type ExerciseCatalogEntry struct {
	Name              string  `yaml:"name"               json:"name"`
	Category          string  `yaml:"category"           json:"category"`
	CaloriesPerMinute float64 `yaml:"calories_per_minute" json:"calories_per_minute"`
}

// Catalog maps exercise name to its entry. Treat it as read-only once built.
type Catalog map[string]ExerciseCatalogEntry

// ValidGender reports whether g is one of the known genders.
func ValidGender(g Gender) bool {
	return g == Male || g == Female
}

// ValidActivityLevel reports whether a has a multiplier.
func ValidActivityLevel(a ActivityLevel) bool {
	_, ok := activityMultipliers[a]
	return ok
}

// ValidGoal reports whether g is a known Goal.
func ValidGoal(g Goal) bool {
	switch g {
	case LoseWeight, Maintain, GainWeight:
		return true
	}
	return false
}
