package main

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu      sync.Mutex
	users   map[string]user // by username
	tokens  map[string]int
	entries []logEntry
	prof    map[int]profile
	weights []weightEntry
	nextID  int
	failAll error // when set, every data method returns it
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[string]user{},
		tokens: map[string]int{},
		prof:   map[int]profile{},
	}
}

func (s *memStore) addUser(u user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Username] = u
	s.tokens[u.AuthToken] = u.ID
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) UserByUsername(_ context.Context, username string) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return user{}, errNotFound
	}
	return u, nil
}

func (s *memStore) UserIDForToken(_ context.Context, token string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	if !ok {
		return 0, errNotFound
	}
	return id, nil
}

func (s *memStore) RotateToken(_ context.Context, userID int, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return s.failAll
	}
	for old, id := range s.tokens {
		if id == userID {
			delete(s.tokens, old)
			s.tokens[token] = userID
			for name, u := range s.users {
				if u.ID == userID {
					u.AuthToken = token
					s.users[name] = u
				}
			}
			return nil
		}
	}
	return errNotFound
}

func (s *memStore) FetchLifetimeStats(_ context.Context, userID int) (lifetimeStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return lifetimeStats{}, s.failAll
	}
	var st lifetimeStats
	days := map[string]bool{}
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		days[e.Date.Format(dateLayout)] = true
		if e.Kind == kindExercise {
			st.TotalWorkouts++
			st.TotalCaloriesBurned += e.Calories
			st.TotalExerciseMinutes += e.DurationMinutes
		}
	}
	st.DaysLogged = len(days)
	return st, nil
}

func (s *memStore) FetchEntriesForDate(_ context.Context, userID int, date string, kind entryKind) ([]logEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return nil, s.failAll
	}
	var out []logEntry
	for _, e := range s.entries {
		if e.UserID == userID && e.Kind == kind && e.Date.Format(dateLayout) == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memStore) FetchEntriesInRange(_ context.Context, userID int, start, end string) ([]logEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return nil, s.failAll
	}
	var out []logEntry
	for _, e := range s.entries {
		d := e.Date.Format(dateLayout)
		if e.UserID == userID && d >= start && d <= end {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out, nil
}

func (s *memStore) InsertEntry(_ context.Context, userID int, e logEntry) (logEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return logEntry{}, s.failAll
	}
	now := time.Now()
	e.ID = s.id()
	e.UserID = userID
	e.CreatedAt = &now
	s.entries = append(s.entries, e)
	return e, nil
}

func (s *memStore) DeleteEntry(_ context.Context, userID int, kind entryKind, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return s.failAll
	}
	for i, e := range s.entries {
		if e.ID == id && e.UserID == userID && e.Kind == kind {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (s *memStore) FetchProfile(_ context.Context, userID int) (profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return profile{}, s.failAll
	}
	p, ok := s.prof[userID]
	if !ok {
		return profile{}, errNotFound
	}
	return p, nil
}

func (s *memStore) UpsertProfile(_ context.Context, userID int, b patchProfileRequest) (profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return profile{}, s.failAll
	}
	p, ok := s.prof[userID]
	if !ok {
		p = defaultProfile(userID)
	}
	if b.Gender != nil {
		p.Gender = b.Gender
	}
	if b.Age != nil {
		p.Age = b.Age
	}
	if b.HeightCm != nil {
		p.HeightCm = b.HeightCm
	}
	if b.CurrentWeightKg != nil {
		p.CurrentWeightKg = b.CurrentWeightKg
	}
	if b.StartWeightKg != nil {
		p.StartWeightKg = b.StartWeightKg
	}
	if b.GoalWeightKg != nil {
		p.GoalWeightKg = b.GoalWeightKg
	}
	if b.ActivityLevel != nil {
		p.ActivityLevel = b.ActivityLevel
	}
	if b.Goal != nil {
		p.Goal = b.Goal
	}
	if b.Units != nil {
		p.Units = *b.Units
	}
	if b.CalorieGoal != nil {
		p.CalorieGoal = *b.CalorieGoal
	}
	s.prof[userID] = p
	return p, nil
}

func (s *memStore) FetchWeightLog(_ context.Context, userID int, start, end string) ([]weightEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return nil, s.failAll
	}
	var out []weightEntry
	for _, w := range s.weights {
		d := w.Date.Format(dateLayout)
		if w.UserID == userID && d >= start && d <= end {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out, nil
}

func (s *memStore) UpsertWeight(_ context.Context, userID int, date string, weightKg float64) (weightEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return weightEntry{}, s.failAll
	}
	for i, w := range s.weights {
		if w.UserID == userID && w.Date.Format(dateLayout) == date {
			s.weights[i].WeightKg = weightKg
			return s.weights[i], nil
		}
	}
	t, _ := time.Parse(dateLayout, date)
	w := weightEntry{ID: s.id(), UserID: userID, Date: DateOnly{t}, WeightKg: weightKg}
	s.weights = append(s.weights, w)
	return w, nil
}

func (s *memStore) LatestWeight(_ context.Context, userID int) (weightEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return weightEntry{}, s.failAll
	}
	var latest *weightEntry
	for i, w := range s.weights {
		if w.UserID == userID && (latest == nil || w.Date.After(latest.Date.Time)) {
			latest = &s.weights[i]
		}
	}
	if latest == nil {
		return weightEntry{}, errNotFound
	}
	return *latest, nil
}

func (s *memStore) DeleteWeight(_ context.Context, userID int, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return s.failAll
	}
	for i, w := range s.weights {
		if w.ID == id && w.UserID == userID {
			s.weights = append(s.weights[:i], s.weights[i+1:]...)
			return nil
		}
	}
	return errNotFound
}
