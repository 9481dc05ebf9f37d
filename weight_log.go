package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// maxWeightKg bounds weight entries; anything above is a typo.
const maxWeightKg = 999.9

// getWeightLog returns weight entries for the authenticated user within [start, end].
// GET /api/weight-log?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params required.
// Returns an empty array (not null) if no entries exist in the range.
func (h *Handler) getWeightLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	start, end, ok := dateRange(c)
	if !ok {
		return
	}

	entries, err := h.store.FetchWeightLog(c, userID, start, end)
	if err != nil {
		logrus.Errorf("[getWeightLog] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch weight log")
		return
	}
	// Ensure empty array (not null) in JSON
	if entries == nil {
		entries = []weightEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// upsertWeightEntry creates or updates the weight entry for the given date.
// POST /api/weight-log. Body: { "date": "YYYY-MM-DD", "weight_kg": 84.2 }.
// Posting the same date again updates that day in place. The profile's
// current weight follows the newest entry.
func (h *Handler) upsertWeightEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body struct {
		Date     string  `json:"date"`
		WeightKg float64 `json:"weight_kg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		apiError(c, http.StatusBadRequest, "date is required")
		return
	}
	if !validDate(body.Date) {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if body.WeightKg <= 0 || body.WeightKg > maxWeightKg {
		apiError(c, http.StatusBadRequest, "weight_kg must be between 0 and 999.9")
		return
	}

	entry, err := h.store.UpsertWeight(c, userID, body.Date, body.WeightKg)
	if err != nil {
		logrus.Errorf("[upsertWeightEntry] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to upsert weight entry")
		return
	}
	if err := h.syncCurrentWeight(c, userID); err != nil {
		logrus.Errorf("[upsertWeightEntry] sync profile, user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to update current weight")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// deleteWeightEntry removes a weight log entry by ID.
// DELETE /api/weight-log/:id. Returns 204 on success, 404 if not found.
// Ownership is enforced by requiring both id and user_id to match.
func (h *Handler) deleteWeightEntry(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, ok := idParam(c)
	if !ok {
		return
	}
	err := h.store.DeleteWeight(c, userID, id)
	if err == nil {
		err = h.syncCurrentWeight(c, userID)
	}
	deleteResult(c, err, "weight entry")
}

// syncCurrentWeight copies the newest weight log entry into the profile's
// current weight, so BMR and weight progress follow what the user logs.
// With no entries left the profile keeps its last value.
func (h *Handler) syncCurrentWeight(c *gin.Context, userID int) error {
	latest, err := h.store.LatestWeight(c, userID)
	if errors.Is(err, errNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = h.store.UpsertProfile(c, userID, patchProfileRequest{CurrentWeightKg: &latest.WeightKg})
	return err
}
