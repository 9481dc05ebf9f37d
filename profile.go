package main

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lg/fitness-tracker-api/fitcalc"
)

// defaultCalorieGoal matches the profiles.calorie_goal column default; used
// when a user has no profile row yet.
const defaultCalorieGoal = 2000

var validUnits = map[string]bool{"metric": true, "imperial": true}

// defaultProfile is what a user without a profiles row sees.
func defaultProfile(userID int) profile {
	return profile{UserID: userID, Units: "metric", CalorieGoal: defaultCalorieGoal}
}

// userMetrics converts the stored profile into fitcalc input. Returns
// ok=false when any field the BMR formula needs is missing. A missing
// activity level or goal is passed through empty so the calculator's
// documented fallbacks apply.
func userMetrics(p profile) (fitcalc.UserMetrics, bool) {
	if p.Gender == nil || p.Age == nil || p.HeightCm == nil || p.CurrentWeightKg == nil {
		return fitcalc.UserMetrics{}, false
	}
	m := fitcalc.UserMetrics{
		Gender:          fitcalc.Gender(*p.Gender),
		Age:             *p.Age,
		HeightCm:        *p.HeightCm,
		CurrentWeightKg: *p.CurrentWeightKg,
	}
	if p.ActivityLevel != nil {
		m.ActivityLevel = fitcalc.ActivityLevel(*p.ActivityLevel)
	}
	if p.Goal != nil {
		m.Goal = fitcalc.Goal(*p.Goal)
	}
	return m, true
}

// populateComputed fills the computed-only fields on p. Targets are left nil
// if the profile is incomplete; weight progress needs start, current and goal.
func (h *Handler) populateComputed(p *profile) {
	if m, ok := userMetrics(*p); ok {
		if t, err := h.calc.DailyTargets(m); err == nil {
			bmr, tdee, goal := int(t.BMR), int(t.TDEE), int(t.CalorieGoal)
			p.ComputedBMR = &bmr
			p.ComputedTDEE = &tdee
			p.ComputedCalorieGoal = &goal
		} else {
			logrus.Debugf("[populateComputed] user %d: %v", p.UserID, err)
		}
	}
	if p.StartWeightKg != nil && p.CurrentWeightKg != nil && p.GoalWeightKg != nil {
		pct := fitcalc.ProgressPercentage(*p.StartWeightKg, *p.CurrentWeightKg, *p.GoalWeightKg)
		p.WeightProgress = &pct
	}
}

// effectiveCalorieGoal prefers the computed goal and falls back to the
// manual one. The second return value names the source.
func effectiveCalorieGoal(p profile) (int, string) {
	if p.ComputedCalorieGoal != nil {
		return *p.ComputedCalorieGoal, "computed"
	}
	return p.CalorieGoal, "manual"
}

// loadProfile fetches the user's profile with computed fields, falling back
// to defaults when the user has no row yet.
func (h *Handler) loadProfile(c *gin.Context, userID int) (profile, error) {
	p, err := h.store.FetchProfile(c, userID)
	if errors.Is(err, errNotFound) {
		p = defaultProfile(userID)
	} else if err != nil {
		return profile{}, err
	}
	h.populateComputed(&p)
	return p, nil
}

// getProfile returns the authenticated user's profile with computed BMR,
// TDEE, calorie goal and weight progress when the inputs are present.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	p, err := h.loadProfile(c, userID)
	if err != nil {
		logrus.Errorf("[getProfile] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Pointer fields in the request body distinguish
// "not provided" from zero. Enum fields are validated against fitcalc so an
// unknown value can't silently disable goal computation later.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfilePatch(body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	if body == (patchProfileRequest{}) {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	p, err := h.store.UpsertProfile(c, userID, body)
	if err != nil {
		logrus.Errorf("[patchProfile] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	h.populateComputed(&p)
	c.JSON(http.StatusOK, p)
}

// validateProfilePatch returns a user-facing message for the first invalid
// field, or "" when the patch is acceptable.
func validateProfilePatch(b patchProfileRequest) string {
	if b.Gender != nil && !fitcalc.ValidGender(fitcalc.Gender(*b.Gender)) {
		return "gender must be one of: male, female"
	}
	if b.ActivityLevel != nil && !fitcalc.ValidActivityLevel(fitcalc.ActivityLevel(*b.ActivityLevel)) {
		return "activity_level must be one of: sedentary, light, moderate, active, very_active"
	}
	if b.Goal != nil && !fitcalc.ValidGoal(fitcalc.Goal(*b.Goal)) {
		return "goal must be one of: lose_weight, maintain, gain_weight"
	}
	if b.Units != nil && !validUnits[*b.Units] {
		return "units must be one of: metric, imperial"
	}
	if b.Age != nil && (*b.Age <= 0 || *b.Age > 130) {
		return "age must be between 1 and 130"
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"height_cm", b.HeightCm},
		{"current_weight_kg", b.CurrentWeightKg},
		{"start_weight_kg", b.StartWeightKg},
		{"goal_weight_kg", b.GoalWeightKg},
	} {
		if f.v != nil && (*f.v <= 0 || *f.v > 9999.9 || math.IsNaN(*f.v)) {
			return f.name + " must be between 0 and 9999.9"
		}
	}
	if b.CalorieGoal != nil && *b.CalorieGoal < 0 {
		return "calorie_goal must not be negative"
	}
	return ""
}
