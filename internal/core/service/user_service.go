package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

const (
	statsWindowDays   = 30
	recentEntryCount  = 5
	defaultTrendDays  = 7
	maxTrendDays      = 90
	defaultUserLimit  = 20
	maxUserLimit      = 100
	minPasswordLength = 8
	// bcrypt ignores nothing past this; GenerateFromPassword rejects it.
	maxPasswordBytes = 72
)

type UserService struct {
	users   ports.UserRepository
	entries ports.EntryRepository
	cache   ports.StatsCache
	loc     *time.Location
	now     func() time.Time
	log     zerolog.Logger
}

// NewUserService wires the user use cases. cache may be nil.
func NewUserService(
	users ports.UserRepository,
	entries ports.EntryRepository,
	cache ports.StatsCache,
	loc *time.Location,
	log zerolog.Logger,
) *UserService {
	if cache == nil {
		cache = noopStatsCache{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &UserService{users: users, entries: entries, cache: cache, loc: loc, now: time.Now, log: log}
}

// Register validates and stores a new profile with its maintenance baseline.
func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	user := &domain.User{
		Username:       in.Username,
		Email:          in.Email,
		Age:            in.Age,
		Gender:         domain.Gender(strings.ToLower(strings.TrimSpace(in.Gender))),
		WeightKg:       in.WeightKg,
		HeightCm:       in.HeightCm,
		ActivityFactor: in.ActivityFactor,
		IsActive:       true,
	}
	user.Normalize()
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := user.RecomputeMaintenance(); err != nil {
		return nil, err
	}

	if in.Password != "" {
		if len(in.Password) < minPasswordLength {
			return nil, domain.NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
		}
		if len(in.Password) > maxPasswordBytes {
			return nil, domain.NewValidationError("password", fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("register user: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.log.Info().
		Str("user_id", user.ID).
		Int("maintenance_calories", user.MaintenanceCalories).
		Msg("user registered")
	return user, nil
}

// GetProfile returns the user with their statistics and latest entries.
func (s *UserService) GetProfile(ctx context.Context, caller ports.Caller, id string) (*ports.UserProfile, error) {
	if !caller.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	filter := ports.EntryFilter{UserID: user.ID}
	profile := &ports.UserProfile{User: user}

	day := s.now().In(s.loc).Format(dateLayout)
	stats, ok, err := s.cache.Get(ctx, user.ID, day)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("stats cache read failed")
	}
	if ok {
		profile.Stats = *stats
		recent, err := s.entries.Find(ctx, filter, ports.Pagination{Limit: recentEntryCount})
		if err != nil {
			return nil, fmt.Errorf("get profile: %w", err)
		}
		profile.RecentEntries = recent
		return profile, nil
	}

	all, err := s.entries.Find(ctx, filter, ports.Pagination{})
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	profile.Stats = ComputeStats(all, statsWindowDays, s.now(), s.loc)
	profile.RecentEntries = all[:min(recentEntryCount, len(all))]

	if err := s.cache.Set(ctx, user.ID, day, profile.Stats); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("stats cache write failed")
	}
	return profile, nil
}

// UpdateUser applies patch and recomputes the maintenance baseline when a
// biometric field changed. Only admins may change isActive.
func (s *UserService) UpdateUser(ctx context.Context, caller ports.Caller, id string, patch domain.UserPatch) (*domain.User, error) {
	if !caller.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	if patch.IsActive != nil && !caller.IsAdmin {
		return nil, domain.ErrForbidden
	}
	if patch.Gender != nil {
		g := domain.Gender(strings.ToLower(strings.TrimSpace(string(*patch.Gender))))
		patch.Gender = &g
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if err := requireActive(caller, user); err != nil {
		return nil, err
	}

	patch.Apply(user)
	user.Normalize()
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if patch.TouchesBiometrics() {
		if err := user.RecomputeMaintenance(); err != nil {
			return nil, err
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info().
		Str("user_id", user.ID).
		Bool("recomputed", patch.TouchesBiometrics()).
		Int("maintenance_calories", user.MaintenanceCalories).
		Msg("user updated")
	return user, nil
}

// DeactivateUser soft-deletes the user. Entries are kept.
func (s *UserService) DeactivateUser(ctx context.Context, caller ports.Caller, id string) (*domain.User, error) {
	if !caller.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.Deactivate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("deactivate user: %w", err)
	}
	s.log.Info().Str("user_id", user.ID).Msg("user deactivated")
	return user, nil
}

// ListUsers returns a page of users for admins.
func (s *UserService) ListUsers(ctx context.Context, in ports.ListUsersInput) (*ports.ListUsersResult, error) {
	if !in.Caller.IsAdmin {
		return nil, domain.ErrForbidden
	}

	verr := &domain.ValidationError{}
	if in.Limit < 0 {
		verr.Add("limit", "limit must be at least 0")
	}
	if in.Offset < 0 {
		verr.Add("offset", "offset must be at least 0")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit == 0 {
		limit = defaultUserLimit
	}
	if limit > maxUserLimit {
		limit = maxUserLimit
	}

	filter := ports.UserFilter{Search: strings.TrimSpace(in.Search), Active: in.Active, AdminOnly: in.AdminOnly}
	users, counts, err := s.users.List(ctx, filter, ports.Pagination{Limit: limit, Offset: in.Offset})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &ports.ListUsersResult{
		Users:       users,
		TotalUsers:  counts.Total,
		ActiveUsers: counts.Active,
		Limit:       limit,
		Offset:      in.Offset,
		HasMore:     int64(in.Offset+len(users)) < counts.Matching,
	}, nil
}

// TodayBalance compares today's intake with the user's maintenance baseline.
func (s *UserService) TodayBalance(ctx context.Context, caller ports.Caller, id string) (*domain.CalorieBalance, error) {
	if !caller.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	today := TodayRange(s.now(), s.loc)
	entries, err := s.entries.Find(ctx, ports.EntryFilter{UserID: user.ID, Range: &today}, ports.Pagination{})
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	b, err := Balance(TotalCalories(entries), user.MaintenanceCalories)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	b.Date = today.From.Format(dateLayout)
	return &b, nil
}

// Trend returns per-day calorie totals for the last days days, oldest first.
func (s *UserService) Trend(ctx context.Context, caller ports.Caller, id string, days int) ([]domain.DailyTotal, error) {
	if !caller.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	if days == 0 {
		days = defaultTrendDays
	}
	if days < 1 || days > maxTrendDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("days must be between 1 and %d", maxTrendDays))
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}

	now := s.now()
	window := WindowRange(days, now, s.loc)
	entries, err := s.entries.Find(ctx, ports.EntryFilter{UserID: id, Range: &window}, ports.Pagination{})
	if err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}
	return Trend(entries, days, now, s.loc), nil
}

// requireActive rejects a deactivated user changing their own profile.
// Tokens outlive deactivation, so the stored flag is checked. Admins are exempt.
func requireActive(caller ports.Caller, user *domain.User) error {
	if !caller.IsAdmin && !user.IsActive {
		return domain.ErrUserInactive
	}
	return nil
}
