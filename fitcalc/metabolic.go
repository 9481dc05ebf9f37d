package fitcalc

import (
	"fmt"
	"math"
)

// DefaultCalorieAdjustment is the daily deficit/surplus for lose/gain goals.
// 3500 kcal is roughly 1 lb of body weight, so 500/day is about 1 lb/week.
const DefaultCalorieAdjustment = 500

// activityMultipliers maps activity level to its TDEE multiplier. This is the
// single source of truth for valid levels; the API validates against it too.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// Calculator carries the two tunables of the metabolic formulas. The zero
// value is not useful; start from DefaultCalculator.
type Calculator struct {
	// CalorieAdjustment is subtracted from TDEE for LoseWeight and added for
	// GainWeight.
	CalorieAdjustment float64
	// FallbackActivity is used by CalculateTDEE when the requested level is
	// not in the multiplier table.
	FallbackActivity ActivityLevel
}

// DefaultCalculator backs the package-level functions.
var DefaultCalculator = Calculator{
	CalorieAdjustment: DefaultCalorieAdjustment,
	FallbackActivity:  Moderate,
}

// ActivityMultiplier returns the multiplier for level and whether level was
// found. Unknown levels report the fallback's multiplier with ok=false.
func (c Calculator) ActivityMultiplier(level ActivityLevel) (mult float64, ok bool) {
	if m, found := activityMultipliers[level]; found {
		return m, true
	}
	if m, found := activityMultipliers[c.FallbackActivity]; found {
		return m, false
	}
	return activityMultipliers[Moderate], false
}

// CalculateBMR estimates basal metabolic rate with the revised Harris-Benedict
// equation, rounded to the nearest kcal.
func CalculateBMR(m UserMetrics) (float64, error) {
	if m.Age <= 0 {
		return 0, fmt.Errorf("age %d: %w", m.Age, ErrInvalidMetrics)
	}
	if !finitePositive(m.CurrentWeightKg) {
		return 0, fmt.Errorf("weight %v kg: %w", m.CurrentWeightKg, ErrInvalidMetrics)
	}
	if !finitePositive(m.HeightCm) {
		return 0, fmt.Errorf("height %v cm: %w", m.HeightCm, ErrInvalidMetrics)
	}

	age := float64(m.Age)
	var bmr float64
	switch m.Gender {
	case Male:
		bmr = 88.362 + 13.397*m.CurrentWeightKg + 4.799*m.HeightCm - 5.677*age
	case Female:
		bmr = 447.593 + 9.247*m.CurrentWeightKg + 3.098*m.HeightCm - 4.330*age
	default:
		return 0, fmt.Errorf("gender %q: %w", m.Gender, ErrInvalidMetrics)
	}
	return math.Round(bmr), nil
}

// CalculateTDEE scales bmr by the activity multiplier and rounds. Unknown
// levels use the calculator's FallbackActivity rather than failing.
func (c Calculator) CalculateTDEE(bmr float64, level ActivityLevel) float64 {
	mult, _ := c.ActivityMultiplier(level)
	return math.Round(bmr * mult)
}

// CalculateCalorieGoal adjusts tdee by CalorieAdjustment according to goal.
// Maintain and unrecognized goals return tdee unchanged.
func (c Calculator) CalculateCalorieGoal(tdee float64, goal Goal) float64 {
	switch goal {
	case LoseWeight:
		return tdee - c.CalorieAdjustment
	case GainWeight:
		return tdee + c.CalorieAdjustment
	default:
		return tdee
	}
}

// DailyTargets runs BMR → TDEE → calorie goal in one go.
func (c Calculator) DailyTargets(m UserMetrics) (Targets, error) {
	bmr, err := CalculateBMR(m)
	if err != nil {
		return Targets{}, err
	}
	tdee := c.CalculateTDEE(bmr, m.ActivityLevel)
	return Targets{
		BMR:         bmr,
		TDEE:        tdee,
		CalorieGoal: c.CalculateCalorieGoal(tdee, m.Goal),
	}, nil
}

// Targets is the result of DailyTargets.
type Targets struct {
	BMR         float64
	TDEE        float64
	CalorieGoal float64
}

// CalculateTDEE is DefaultCalculator.CalculateTDEE.
func CalculateTDEE(bmr float64, level ActivityLevel) float64 {
	return DefaultCalculator.CalculateTDEE(bmr, level)
}

// CalculateCalorieGoal is DefaultCalculator.CalculateCalorieGoal.
func CalculateCalorieGoal(tdee float64, goal Goal) float64 {
	return DefaultCalculator.CalculateCalorieGoal(tdee, goal)
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
