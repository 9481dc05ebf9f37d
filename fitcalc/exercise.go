package fitcalc

import (
	"fmt"
	"sort"
)

// EstimateCalories looks up name in catalog by exact match and returns
// round(caloriesPerMinute * durationMinutes). A miss returns
// ErrUnknownExercise; this package never guesses a rate. Durations whose
// estimate won't fit an INTEGER column return ErrInvalidMeasurement.
func EstimateCalories(catalog Catalog, name string, durationMinutes int) (int, error) {
	if durationMinutes < 0 {
		return 0, fmt.Errorf("duration %d min: %w", durationMinutes, ErrInvalidMeasurement)
	}
	entry, ok := catalog[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownExercise)
	}
	return roundToInt("duration", float64(durationMinutes), entry.CaloriesPerMinute*float64(durationMinutes))
}

// Entries returns the catalog rows sorted by name.
func (c Catalog) Entries() []ExerciseCatalogEntry {
	out := make([]ExerciseCatalogEntry, 0, len(c))
	for _, e := range c {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DefaultCatalog returns a fresh copy of the built-in exercise table.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(defaultExercises))
	for _, e := range defaultExercises {
		c[e.Name] = e
	}
	return c
}

var defaultExercises = []ExerciseCatalogEntry{
	{Name: "Running", Category: "Cardio", CaloriesPerMinute: 10},
	{Name: "Cycling", Category: "Cardio", CaloriesPerMinute: 8},
	{Name: "Swimming", Category: "Cardio", CaloriesPerMinute: 12},
	{Name: "Weight Training", Category: "Strength", CaloriesPerMinute: 6},
	{Name: "Yoga", Category: "Flexibility", CaloriesPerMinute: 3},
	{Name: "Walking", Category: "Cardio", CaloriesPerMinute: 4},
	{Name: "HIIT", Category: "Cardio", CaloriesPerMinute: 15},
	{Name: "Pilates", Category: "Strength", CaloriesPerMinute: 4},
}
