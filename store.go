package main

import (
	"context"
	"errors"
)

// errNotFound is returned by Store methods when the addressed row does not
// exist (or belongs to another user).
var errNotFound = errors.New("not found")

// Store is everything the handlers need from persistence. Dates are
// "YYYY-MM-DD" strings that the caller has already validated. Every method
// is scoped to a user; rows owned by someone else behave as missing.
type Store interface {
	UserByUsername(ctx context.Context, username string) (user, error)
	UserIDForToken(ctx context.Context, token string) (int, error)
	RotateToken(ctx context.Context, userID int, token string) error

	FetchEntriesForDate(ctx context.Context, userID int, date string, kind entryKind) ([]logEntry, error)
	FetchEntriesInRange(ctx context.Context, userID int, start, end string) ([]logEntry, error)
	InsertEntry(ctx context.Context, userID int, e logEntry) (logEntry, error)
	DeleteEntry(ctx context.Context, userID int, kind entryKind, id int) error
	FetchLifetimeStats(ctx context.Context, userID int) (lifetimeStats, error)

	FetchProfile(ctx context.Context, userID int) (profile, error)
	UpsertProfile(ctx context.Context, userID int, p patchProfileRequest) (profile, error)

	FetchWeightLog(ctx context.Context, userID int, start, end string) ([]weightEntry, error)
	UpsertWeight(ctx context.Context, userID int, date string, weightKg float64) (weightEntry, error)
	LatestWeight(ctx context.Context, userID int) (weightEntry, error)
	DeleteWeight(ctx context.Context, userID int, id int) error
}
