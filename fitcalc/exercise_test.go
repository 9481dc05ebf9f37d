package fitcalc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCalories(t *testing.T) {
	catalog := Catalog{
		"Running": {Name: "Running", Category: "Cardio", CaloriesPerMinute: 10},
		"Rowing":  {Name: "Rowing", Category: "Cardio", CaloriesPerMinute: 7.5},
	}

	got, err := EstimateCalories(catalog, "Running", 30)
	require.NoError(t, err)
	assert.Equal(t, 300, got)

	got, err = EstimateCalories(catalog, "Rowing", 3) // 22.5 rounds half away from zero
	require.NoError(t, err)
	assert.Equal(t, 23, got)

	got, err = EstimateCalories(catalog, "Running", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = EstimateCalories(catalog, "Unknown", 10)
	assert.ErrorIs(t, err, ErrUnknownExercise)

	// Lookup is exact; no case folding.
	_, err = EstimateCalories(catalog, "running", 10)
	assert.ErrorIs(t, err, ErrUnknownExercise)

	_, err = EstimateCalories(catalog, "Running", -5)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestEstimateCalories_OutOfRange(t *testing.T) {
	catalog := DefaultCatalog()

	for _, minutes := range []int{1 << 62, math.MaxInt, math.MaxInt32} {
		got, err := EstimateCalories(catalog, "HIIT", minutes)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "minutes=%d", minutes)
		assert.Zero(t, got)
	}

	// 15/min: the largest duration whose estimate still fits.
	got, err := EstimateCalories(catalog, "HIIT", math.MaxInt32/15)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32/15*15, got)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c, 8)
	assert.Equal(t, 15.0, c["HIIT"].CaloriesPerMinute)
	assert.Equal(t, "Flexibility", c["Yoga"].Category)

	// Each call hands out its own map.
	delete(c, "HIIT")
	assert.Contains(t, DefaultCatalog(), "HIIT")

	entries := DefaultCatalog().Entries()
	require.Len(t, entries, 8)
	assert.Equal(t, "Cycling", entries[0].Name)
	assert.Equal(t, "Yoga", entries[7].Name)
}

func TestLoadCatalog(t *testing.T) {
	src := `
exercises:
  - name: Rowing
    category: Cardio
    calories_per_minute: 7.5
  - name: Boxing
    category: Cardio
    calories_per_minute: 11
`
	c, err := LoadCatalog(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, c, 2)

	got, err := EstimateCalories(c, "Boxing", 20)
	require.NoError(t, err)
	assert.Equal(t, 220, got)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty document": ``,
		"no exercises":   `exercises: []`,
		"missing name":   "exercises:\n  - category: Cardio\n    calories_per_minute: 5\n",
		"zero rate":      "exercises:\n  - name: Nap\n    category: Rest\n    calories_per_minute: 0\n",
		"duplicate": "exercises:\n  - name: Yoga\n    calories_per_minute: 3\n" +
			"  - name: Yoga\n    calories_per_minute: 4\n",
		"unknown field": "exercises:\n  - name: Yoga\n    kcal: 3\n",
		"not yaml":      "exercises: [",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}
