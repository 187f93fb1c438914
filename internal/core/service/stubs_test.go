package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. They clone on every read and write and apply
// the same filters, ordering and id rules as the Mongo adapters.
// ---------------------------------------------------------------------------

func validHexID(id string) bool {
	if len(id) != 24 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

func cloneEntry(e *domain.FoodEntry) *domain.FoodEntry {
	clone := *e
	clone.NutrientProfile = e.NutrientProfile.Clone()
	return &clone
}

type stubEntryRepo struct {
	mu        sync.Mutex
	seq       int
	entries   map[string]*domain.FoodEntry
	now       func() time.Time
	createErr error
	findCalls int
}

func newStubEntryRepo(now func() time.Time) *stubEntryRepo {
	return &stubEntryRepo{entries: make(map[string]*domain.FoodEntry), now: now}
}

func (r *stubEntryRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("%024x", r.seq)
}

func (r *stubEntryRepo) Create(_ context.Context, e *domain.FoodEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	e.ID = r.nextID()
	e.CreatedAt = r.now().UTC()
	e.UpdatedAt = e.CreatedAt
	r.entries[e.ID] = cloneEntry(e)
	return nil
}

// seed stores an entry with a caller-chosen creation time.
func (r *stubEntryRepo) seed(userID string, calories float64, meal domain.Meal, at time.Time) *domain.FoodEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := &domain.FoodEntry{
		ID:              r.nextID(),
		UserID:          userID,
		FoodText:        fmt.Sprintf("food %v", calories),
		NutrientProfile: domain.NutrientProfile{Calories: calories, Confidence: 0.5, Ingredients: []string{}},
		Meal:            meal,
		CreatedAt:       at.UTC(),
		UpdatedAt:       at.UTC(),
	}
	r.entries[e.ID] = cloneEntry(e)
	return cloneEntry(e)
}

func (r *stubEntryRepo) Find(_ context.Context, f ports.EntryFilter, p ports.Pagination) ([]*domain.FoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++

	var matched []*domain.FoodEntry
	for _, e := range r.entries {
		if e.UserID != f.UserID {
			continue
		}
		if f.Range != nil && !f.Range.Contains(e.CreatedAt) {
			continue
		}
		if f.Meal != nil && e.Meal != *f.Meal {
			continue
		}
		matched = append(matched, cloneEntry(e))
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	if p.Offset >= len(matched) {
		return []*domain.FoodEntry{}, nil
	}
	matched = matched[p.Offset:]
	if p.Limit > 0 && p.Limit < len(matched) {
		matched = matched[:p.Limit]
	}
	return matched, nil
}

func (r *stubEntryRepo) Delete(_ context.Context, id, ownerID string) (*domain.FoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validHexID(id) {
		return nil, domain.ErrInvalidID
	}
	e, ok := r.entries[id]
	if !ok || (ownerID != "" && e.UserID != ownerID) {
		return nil, domain.ErrEntryNotFound
	}
	delete(r.entries, id)
	return cloneEntry(e), nil
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

type stubUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

// conflict mirrors the unique indexes: case-insensitive username, exact email.
func (r *stubUserRepo) conflict(u *domain.User) error {
	for id, other := range r.users {
		if id == u.ID {
			continue
		}
		if strings.EqualFold(other.Username, u.Username) {
			return &domain.ConflictError{Field: "username"}
		}
		if other.Email == u.Email {
			return &domain.ConflictError{Field: "email"}
		}
	}
	return nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.conflict(u); err != nil {
		return err
	}
	r.seq++
	u.ID = fmt.Sprintf("%024x", 0xa00+r.seq)
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validHexID(id) {
		return nil, domain.ErrInvalidID
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, f ports.UserFilter, p ports.Pagination) ([]*domain.User, ports.UserCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var counts ports.UserCounts
	var matched []*domain.User
	for _, u := range r.users {
		counts.Total++
		if u.IsActive {
			counts.Active++
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(u.Username), q) && !strings.Contains(u.Email, q) {
				continue
			}
		}
		if f.Active != nil && u.IsActive != *f.Active {
			continue
		}
		if f.AdminOnly && !u.IsAdmin {
			continue
		}
		matched = append(matched, cloneUser(u))
	}
	counts.Matching = int64(len(matched))
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	if p.Offset >= len(matched) {
		return []*domain.User{}, counts, nil
	}
	matched = matched[p.Offset:]
	if p.Limit > 0 && p.Limit < len(matched) {
		matched = matched[:p.Limit]
	}
	return matched, counts, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	if err := r.conflict(u); err != nil {
		return err
	}
	u.UpdatedAt = time.Now().UTC()
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validHexID(id) {
		return nil, domain.ErrInvalidID
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsActive = false
	return cloneUser(u), nil
}

type stubStatsCache struct {
	mu          sync.Mutex
	stats       map[string]domain.UserStats
	invalidated []string
}

func newStubStatsCache() *stubStatsCache {
	return &stubStatsCache{stats: make(map[string]domain.UserStats)}
}

func (c *stubStatsCache) Get(_ context.Context, userID, day string) (*domain.UserStats, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.stats[userID+"/"+day]
	if !ok {
		return nil, false, nil
	}
	return &s, true, nil
}

func (c *stubStatsCache) Set(_ context.Context, userID, day string, s domain.UserStats) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats[userID+"/"+day] = s
	return nil
}

func (c *stubStatsCache) Invalidate(_ context.Context, userID, day string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.stats, userID+"/"+day)
	c.invalidated = append(c.invalidated, userID)
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.EntryEvent
}

func (n *recordingNotifier) Notify(ev domain.EntryEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
