package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var _ Store = (*pgStore)(nil)

// pgStore is the PostgreSQL Store.
type pgStore struct {
	db *pgxpool.Pool
}

func newPGStore(db *pgxpool.Pool) *pgStore {
	return &pgStore{db: db}
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
// pgx.ErrNoRows is translated to errNotFound.
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) (T, error) {
	var zero T
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		logrus.Errorf("[queryOne] query error: %v", err)
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, errNotFound
	}
	if err != nil {
		logrus.Errorf("[queryOne] scan error: %v", err)
		return zero, err
	}
	return result, nil
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		logrus.Errorf("[queryMany] query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		logrus.Errorf("[queryMany] scan error: %v", err)
	}
	return results, err
}

// execOwned runs a DELETE/UPDATE scoped to a user and maps zero affected rows to errNotFound.
func (s *pgStore) execOwned(ctx context.Context, sql string, args pgx.NamedArgs) error {
	result, err := s.db.Exec(ctx, sql, args)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

/* ─── Users ───────────────────────────────────────────────────────────── */

func (s *pgStore) UserByUsername(ctx context.Context, username string) (user, error) {
	return queryOne[user](ctx, s.db,
		"SELECT * FROM users WHERE username = @username",
		pgx.NamedArgs{"username": username})
}

func (s *pgStore) UserIDForToken(ctx context.Context, token string) (int, error) {
	var userID int
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE auth_token = $1", token).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errNotFound
	}
	return userID, err
}

// RotateToken replaces the user's auth token; the old one stops working.
func (s *pgStore) RotateToken(ctx context.Context, userID int, token string) error {
	return s.execOwned(ctx,
		"UPDATE users SET auth_token = @token WHERE id = @userID",
		pgx.NamedArgs{"token": token, "userID": userID})
}

/* ─── Log entries ─────────────────────────────────────────────────────── */

// FetchLifetimeStats aggregates every exercise entry the user has logged.
// Days logged counts dates with any entry, food or exercise.
func (s *pgStore) FetchLifetimeStats(ctx context.Context, userID int) (lifetimeStats, error) {
	return queryOne[lifetimeStats](ctx, s.db,
		`SELECT
		   COUNT(*) FILTER (WHERE kind = 'exercise')                           AS total_workouts,
		   COALESCE(SUM(calories) FILTER (WHERE kind = 'exercise'), 0)         AS total_calories_burned,
		   COALESCE(SUM(duration_minutes) FILTER (WHERE kind = 'exercise'), 0) AS total_exercise_minutes,
		   COUNT(DISTINCT date)                                                AS days_logged
		 FROM log_entries
		 WHERE user_id = @userID`,
		pgx.NamedArgs{"userID": userID})
}

func (s *pgStore) FetchEntriesForDate(ctx context.Context, userID int, date string, kind entryKind) ([]logEntry, error) {
	entries, err := queryMany[logEntry](ctx, s.db,
		`SELECT * FROM log_entries
		 WHERE user_id = @userID AND date = @date AND kind = @kind
		 ORDER BY created_at, id`,
		pgx.NamedArgs{"userID": userID, "date": date, "kind": kind})
	if err != nil {
		return nil, fmt.Errorf("fetch %s entries: %w", kind, err)
	}
	return entries, nil
}

func (s *pgStore) FetchEntriesInRange(ctx context.Context, userID int, start, end string) ([]logEntry, error) {
	entries, err := queryMany[logEntry](ctx, s.db,
		`SELECT * FROM log_entries
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date, created_at, id`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		return nil, fmt.Errorf("fetch entries %s..%s: %w", start, end, err)
	}
	return entries, nil
}

func (s *pgStore) InsertEntry(ctx context.Context, userID int, e logEntry) (logEntry, error) {
	entry, err := queryOne[logEntry](ctx, s.db,
		`INSERT INTO log_entries
			(user_id, date, kind, name, calories, meal, serving, duration_minutes, category, intensity)
		 VALUES
			(@userID, @date, @kind, @name, @calories, @meal, @serving, @durationMinutes, @category, @intensity)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": userID, "date": e.Date.Format(dateLayout), "kind": e.Kind,
			"name": e.Name, "calories": e.Calories, "meal": e.Meal, "serving": e.Serving,
			"durationMinutes": e.DurationMinutes, "category": e.Category, "intensity": e.Intensity,
		})
	if err != nil {
		return logEntry{}, fmt.Errorf("insert %s entry: %w", e.Kind, err)
	}
	return entry, nil
}

func (s *pgStore) DeleteEntry(ctx context.Context, userID int, kind entryKind, id int) error {
	return s.execOwned(ctx,
		"DELETE FROM log_entries WHERE id = @id AND user_id = @userID AND kind = @kind",
		pgx.NamedArgs{"id": id, "userID": userID, "kind": kind})
}

/* ─── Profile ─────────────────────────────────────────────────────────── */

func (s *pgStore) FetchProfile(ctx context.Context, userID int) (profile, error) {
	return queryOne[profile](ctx, s.db,
		"SELECT * FROM profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
}

// UpsertProfile writes only the non-nil fields of p. The column list is built
// dynamically; a user without a row gets one with defaults for everything else.
func (s *pgStore) UpsertProfile(ctx context.Context, userID int, p patchProfileRequest) (profile, error) {
	cols := []string{"user_id"}
	vals := []string{"@userID"}
	sets := []string{}
	args := pgx.NamedArgs{"userID": userID}

	add := func(col, arg string, v any) {
		cols = append(cols, col)
		vals = append(vals, "@"+arg)
		sets = append(sets, col+" = EXCLUDED."+col)
		args[arg] = v
	}
	if p.Gender != nil {
		add("gender", "gender", *p.Gender)
	}
	if p.Age != nil {
		add("age", "age", *p.Age)
	}
	if p.HeightCm != nil {
		add("height_cm", "heightCm", *p.HeightCm)
	}
	if p.CurrentWeightKg != nil {
		add("current_weight_kg", "currentWeightKg", *p.CurrentWeightKg)
	}
	if p.StartWeightKg != nil {
		add("start_weight_kg", "startWeightKg", *p.StartWeightKg)
	}
	if p.GoalWeightKg != nil {
		add("goal_weight_kg", "goalWeightKg", *p.GoalWeightKg)
	}
	if p.ActivityLevel != nil {
		add("activity_level", "activityLevel", *p.ActivityLevel)
	}
	if p.Goal != nil {
		add("goal", "goal", *p.Goal)
	}
	if p.Units != nil {
		add("units", "units", *p.Units)
	}
	if p.CalorieGoal != nil {
		add("calorie_goal", "calorieGoal", *p.CalorieGoal)
	}
	if len(sets) == 0 {
		return s.FetchProfile(ctx, userID)
	}

	query := "INSERT INTO profiles (" + strings.Join(cols, ", ") + ")" +
		" VALUES (" + strings.Join(vals, ", ") + ")" +
		" ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(sets, ", ") +
		" RETURNING *"
	pr, err := queryOne[profile](ctx, s.db, query, args)
	if err != nil {
		return profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return pr, nil
}

/* ─── Weight log ──────────────────────────────────────────────────────── */

func (s *pgStore) FetchWeightLog(ctx context.Context, userID int, start, end string) ([]weightEntry, error) {
	return queryMany[weightEntry](ctx, s.db,
		`SELECT * FROM weight_log
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
}

// UpsertWeight relies on UNIQUE(user_id, date): posting the same date updates in place.
func (s *pgStore) UpsertWeight(ctx context.Context, userID int, date string, weightKg float64) (weightEntry, error) {
	return queryOne[weightEntry](ctx, s.db,
		`INSERT INTO weight_log (user_id, date, weight_kg)
		 VALUES (@userID, @date, @weightKg)
		 ON CONFLICT (user_id, date) DO UPDATE SET weight_kg = EXCLUDED.weight_kg
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "date": date, "weightKg": weightKg})
}

// LatestWeight returns the most recent weight entry by date.
func (s *pgStore) LatestWeight(ctx context.Context, userID int) (weightEntry, error) {
	return queryOne[weightEntry](ctx, s.db,
		`SELECT * FROM weight_log
		 WHERE user_id = @userID
		 ORDER BY date DESC
		 LIMIT 1`,
		pgx.NamedArgs{"userID": userID})
}

func (s *pgStore) DeleteWeight(ctx context.Context, userID int, id int) error {
	return s.execOwned(ctx,
		"DELETE FROM weight_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
}
