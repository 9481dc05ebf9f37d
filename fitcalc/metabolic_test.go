package fitcalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ─── BMR ────────────────────────────────────────────────────────────── */

func TestCalculateBMR(t *testing.T) {
	cases := []struct {
		name string
		m    UserMetrics
		want float64
	}{
		// 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632
		{"male", UserMetrics{Gender: Male, Age: 30, HeightCm: 180, CurrentWeightKg: 80}, 1854},
		// 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.333
		{"female", UserMetrics{Gender: Female, Age: 25, HeightCm: 165, CurrentWeightKg: 60}, 1405},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateBMR(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculateBMR_InvalidMetrics(t *testing.T) {
	valid := UserMetrics{Gender: Male, Age: 30, HeightCm: 180, CurrentWeightKg: 80}
	cases := []struct {
		name  string
		mutFn func(m *UserMetrics)
	}{
		{"zero age", func(m *UserMetrics) { m.Age = 0 }},
		{"negative age", func(m *UserMetrics) { m.Age = -4 }},
		{"zero weight", func(m *UserMetrics) { m.CurrentWeightKg = 0 }},
		{"NaN weight", func(m *UserMetrics) { m.CurrentWeightKg = math.NaN() }},
		{"negative height", func(m *UserMetrics) { m.HeightCm = -170 }},
		{"infinite height", func(m *UserMetrics) { m.HeightCm = math.Inf(1) }},
		{"unknown gender", func(m *UserMetrics) { m.Gender = "other" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := valid
			tc.mutFn(&m)
			_, err := CalculateBMR(m)
			assert.ErrorIs(t, err, ErrInvalidMetrics)
		})
	}
}

/* ─── TDEE ───────────────────────────────────────────────────────────── */

func TestCalculateTDEE(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		want  float64
	}{
		{Sedentary, 2203},  // 1836 * 1.2 = 2203.2
		{Light, 2525},      // 2524.5
		{Moderate, 2846},   // 2845.8
		{Active, 3167},     // 3167.1
		{VeryActive, 3488}, // 3488.4
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateTDEE(1836, tc.level))
		})
	}
}

func TestCalculateTDEE_UnknownLevelFallsBack(t *testing.T) {
	assert.Equal(t, CalculateTDEE(1836, Moderate), CalculateTDEE(1836, "couch"))
	assert.Equal(t, CalculateTDEE(1836, Moderate), CalculateTDEE(1836, ""))

	calc := Calculator{CalorieAdjustment: 500, FallbackActivity: Sedentary}
	assert.Equal(t, 2203.0, calc.CalculateTDEE(1836, "couch"))

	mult, ok := calc.ActivityMultiplier("couch")
	assert.False(t, ok)
	assert.Equal(t, 1.2, mult)
}

/* ─── Calorie goal ───────────────────────────────────────────────────── */

func TestCalculateCalorieGoal(t *testing.T) {
	assert.Equal(t, 1703.0, CalculateCalorieGoal(2203, LoseWeight))
	assert.Equal(t, 2703.0, CalculateCalorieGoal(2203, GainWeight))
	assert.Equal(t, 2203.0, CalculateCalorieGoal(2203, Maintain))
	assert.Equal(t, 2203.0, CalculateCalorieGoal(2203, "bulk"))
}

func TestCalculateCalorieGoal_CustomAdjustment(t *testing.T) {
	calc := Calculator{CalorieAdjustment: 250, FallbackActivity: Moderate}
	assert.Equal(t, 1953.0, calc.CalculateCalorieGoal(2203, LoseWeight))
	assert.Equal(t, 2453.0, calc.CalculateCalorieGoal(2203, GainWeight))
}

func TestDailyTargets(t *testing.T) {
	m := UserMetrics{Gender: Male, Age: 30, HeightCm: 180, CurrentWeightKg: 80,
		ActivityLevel: Sedentary, Goal: LoseWeight}
	got, err := DefaultCalculator.DailyTargets(m)
	require.NoError(t, err)
	assert.Equal(t, Targets{BMR: 1854, TDEE: 2225, CalorieGoal: 1725}, got) // 1854*1.2 = 2224.8

	_, err = DefaultCalculator.DailyTargets(UserMetrics{})
	assert.ErrorIs(t, err, ErrInvalidMetrics)
}

// Same inputs, same outputs, every time.
func TestCalculations_Idempotent(t *testing.T) {
	m := UserMetrics{Gender: Female, Age: 41, HeightCm: 158, CurrentWeightKg: 71.3,
		ActivityLevel: Active, Goal: GainWeight}
	first, err := DefaultCalculator.DailyTargets(m)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := DefaultCalculator.DailyTargets(m)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidGender(Female))
	assert.False(t, ValidGender("x"))
	assert.True(t, ValidActivityLevel(VeryActive))
	assert.False(t, ValidActivityLevel("extreme"))
	assert.True(t, ValidGoal(Maintain))
	assert.False(t, ValidGoal(""))
}
