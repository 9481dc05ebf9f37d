package fitcalc

// SumCalories adds up Calories across entries. An empty slice sums to 0.
func SumCalories(entries []LoggedEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Calories
	}
	return total
}

// SumDuration adds up DurationMinutes across entries.
func SumDuration(entries []LoggedEntry) int {
	total := 0
	for _, e := range entries {
		total += e.DurationMinutes
	}
	return total
}

// RemainingCalories is goal - consumed + burned. A negative result means the
// user is over budget, which is a normal state to show.
func RemainingCalories(goal, consumed, burned int) int {
	return goal - consumed + burned
}

// DailyTotals is the dashboard roll-up for one day.
type DailyTotals struct {
	CalorieGoal       int
	CaloriesConsumed  int
	CaloriesBurned    int
	ExerciseMinutes   int
	CaloriesRemaining int
}

// Summarize computes DailyTotals from the day's food and exercise entries.
func Summarize(goal int, food, exercise []LoggedEntry) DailyTotals {
	consumed := SumCalories(food)
	burned := SumCalories(exercise)
	return DailyTotals{
		CalorieGoal:       goal,
		CaloriesConsumed:  consumed,
		CaloriesBurned:    burned,
		ExerciseMinutes:   SumDuration(exercise),
		CaloriesRemaining: RemainingCalories(goal, consumed, burned),
	}
}
