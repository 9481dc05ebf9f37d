package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"lg/fitness-tracker-api/fitcalc"
)

// Handler holds shared dependencies (store, calculator, reference data) for all route handlers.
type Handler struct {
	store    Store
	calc     fitcalc.Calculator
	catalog  fitcalc.Catalog
	foods    []foodItem
	now      func() time.Time // overridable for tests
	newToken func() string
}

func newHandler(store Store, calc fitcalc.Calculator, catalog fitcalc.Catalog, foods []foodItem) *Handler {
	return &Handler{
		store:    store,
		calc:     calc,
		catalog:  catalog,
		foods:    foods,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// today returns the current date as YYYY-MM-DD.
func (h *Handler) today() string {
	return h.now().Format(dateLayout)
}

// validDate reports whether s is a YYYY-MM-DD date.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// dateRange reads and validates the required start/end query params.
// On failure it has already written the 400 response.
func dateRange(c *gin.Context) (start, end string, ok bool) {
	start = c.Query("start")
	end = c.Query("end")
	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return "", "", false
	}
	if !validDate(start) {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return "", "", false
	}
	if !validDate(end) {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return "", "", false
	}
	// YYYY-MM-DD compares lexically in date order.
	if start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return "", "", false
	}
	return start, end, true
}

// idParam parses the :id path param. On failure it has already written the 400 response.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		apiError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// deleteResult maps a Store delete error to the response.
func deleteResult(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, errNotFound):
		apiError(c, http.StatusNotFound, what+" not found")
	case err != nil:
		logrus.Errorf("[delete] %s: %v", what, err)
		apiError(c, http.StatusInternalServerError, "failed to delete "+what)
	default:
		c.Status(http.StatusNoContent)
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn) because
// hosted Postgres closes idle connections after a few minutes.
func getDBPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, err
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from server-side prepared statement caches after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	return pgxpool.NewWithConfig(ctx, config)
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Public routes
	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.POST("/logout", h.logout)
	api.GET("/stats", h.getLifetimeStats)
	api.GET("/daily", h.getDailySummary)
	api.GET("/progress", h.getProgress)
	api.POST("/food-entries", h.createFoodEntry)
	api.DELETE("/food-entries/:id", h.deleteFoodEntry)
	api.POST("/exercise-entries", h.createExerciseEntry)
	api.DELETE("/exercise-entries/:id", h.deleteExerciseEntry)
	api.GET("/exercise-catalog", h.getExerciseCatalog)
	api.GET("/foods", h.searchFoods)
	api.GET("/workouts", h.getWorkouts)
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/convert", h.convert)
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)
}
