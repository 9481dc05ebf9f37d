package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"lg/fitness-tracker-api/fitcalc"
)

//go:embed reference/foods.yaml
var foodsYAML []byte

// foodItem is one row of the food reference list.
type foodItem struct {
	Name     string `yaml:"name"     json:"name"`
	Calories int    `yaml:"calories" json:"calories"`
	Serving  string `yaml:"serving"  json:"serving"`
}

// parseFoods decodes the embedded food reference list.
func parseFoods(data []byte) ([]foodItem, error) {
	var f struct {
		Foods []foodItem `yaml:"foods"`
	}
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}
	for _, item := range f.Foods {
		if item.Name == "" || item.Calories < 0 {
			return nil, fmt.Errorf("food %q: invalid entry", item.Name)
		}
	}
	return f.Foods, nil
}

// loadCatalog returns the built-in exercise catalog, or the YAML file at path
// when one is configured.
func loadCatalog(path string) (fitcalc.Catalog, error) {
	if path == "" {
		return fitcalc.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fitcalc.LoadCatalog(f)
}

// getExerciseCatalog lists the exercise catalog sorted by name.
// GET /api/exercise-catalog.
func (h *Handler) getExerciseCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Entries())
}

// searchFoods returns reference foods whose name contains q (case-insensitive).
// GET /api/foods?q=. An empty q returns the whole list.
func (h *Handler) searchFoods(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	results := []foodItem{}
	for _, f := range h.foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			results = append(results, f)
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	c.JSON(http.StatusOK, results)
}

/* ─── Workout plans ──────────────────────────────────────────────────── */

// workoutPlan is a curated plan. Activity names the catalog exercise whose
// burn rate best matches the plan; it drives EstimatedCalories.
type workoutPlan struct {
	Title             string   `json:"title"`
	DurationMinutes   int      `json:"duration_minutes"`
	Difficulty        string   `json:"difficulty"`
	Exercises         []string `json:"exercises"`
	CaloriesRange     string   `json:"calories_range"`
	Activity          string   `json:"activity"`
	EstimatedCalories *int     `json:"estimated_calories"`
}

var workoutPlans = []workoutPlan{
	{
		Title: "Beginner Full Body", DurationMinutes: 30, Difficulty: "Beginner",
		Exercises:     []string{"Push-ups", "Squats", "Plank", "Lunges"},
		CaloriesRange: "150-200", Activity: "Weight Training",
	},
	{
		Title: "HIIT Cardio Blast", DurationMinutes: 20, Difficulty: "Intermediate",
		Exercises:     []string{"Burpees", "Mountain Climbers", "Jump Squats", "High Knees"},
		CaloriesRange: "200-300", Activity: "HIIT",
	},
	{
		Title: "Strength Training", DurationMinutes: 45, Difficulty: "Advanced",
		Exercises:     []string{"Deadlifts", "Bench Press", "Squats", "Pull-ups"},
		CaloriesRange: "250-350", Activity: "Weight Training",
	},
	{
		Title: "Core & Flexibility", DurationMinutes: 25, Difficulty: "Beginner",
		Exercises:     []string{"Planks", "Russian Twists", "Leg Raises", "Stretching"},
		CaloriesRange: "100-150", Activity: "Pilates",
	},
}

// getWorkouts returns the workout plans with a catalog-based calorie
// estimate. Plans whose activity isn't in the configured catalog keep only
// the static range.
// GET /api/workouts.
func (h *Handler) getWorkouts(c *gin.Context) {
	plans := make([]workoutPlan, len(workoutPlans))
	for i, p := range workoutPlans {
		p.Exercises = append([]string(nil), p.Exercises...)
		est, err := fitcalc.EstimateCalories(h.catalog, p.Activity, p.DurationMinutes)
		if err == nil {
			p.EstimatedCalories = &est
		} else if !errors.Is(err, fitcalc.ErrUnknownExercise) {
			apiError(c, http.StatusInternalServerError, "failed to estimate workout calories")
			return
		}
		plans[i] = p
	}
	c.JSON(http.StatusOK, plans)
}
