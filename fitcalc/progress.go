package fitcalc

import "math"

// ProgressPercentage reports how far current has moved from start toward
// goal, clamped to [0, 100]. It works for both losing (goal < start) and
// gaining (goal > start). Moving away from the goal past start clamps to 0,
// and goal == start returns 0 instead of dividing by zero.
func ProgressPercentage(start, current, goal float64) float64 {
	if math.IsNaN(start) || math.IsNaN(current) || math.IsNaN(goal) ||
		math.IsInf(start, 0) || math.IsInf(current, 0) || math.IsInf(goal, 0) {
		return 0
	}
	totalDelta := start - goal
	if totalDelta == 0 {
		return 0
	}
	currentDelta := start - current
	return clamp(currentDelta/totalDelta*100, 0, 100)
}

// Percentage is ProgressPercentage over p's fields.
func (p WeightProgress) Percentage() float64 {
	return ProgressPercentage(p.StartWeight, p.CurrentWeight, p.GoalWeight)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
