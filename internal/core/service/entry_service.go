package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

const (
	defaultEntryLimit = 50
	maxEntryLimit     = 100

	dateToday = "today"
	filterAll = "all"
)

type EntryService struct {
	entries  ports.EntryRepository
	users    ports.UserRepository
	cache    ports.StatsCache
	notifier ports.EntryNotifier
	loc      *time.Location
	now      func() time.Time
	log      zerolog.Logger
}

// NewEntryService wires the entry use cases. cache and notifier may be nil.
// Calendar days are evaluated in loc (time.Local when nil).
func NewEntryService(
	entries ports.EntryRepository,
	users ports.UserRepository,
	cache ports.StatsCache,
	notifier ports.EntryNotifier,
	loc *time.Location,
	log zerolog.Logger,
) *EntryService {
	if cache == nil {
		cache = noopStatsCache{}
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &EntryService{
		entries:  entries,
		users:    users,
		cache:    cache,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
		log:      log,
	}
}

// LogEntry estimates and stores a food entry for the caller.
func (s *EntryService) LogEntry(ctx context.Context, in ports.LogEntryInput) (*domain.FoodEntry, error) {
	if in.Caller.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	meal, err := domain.ParseMeal(in.Meal)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(in.FoodText)
	if err := validateFoodText(text); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, in.Caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("log entry: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	entry := &domain.FoodEntry{
		UserID:          user.ID,
		FoodText:        text,
		NutrientProfile: domain.Estimate(text),
		Meal:            meal,
	}
	entry.Normalize()
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to store food entry")
		return nil, fmt.Errorf("log entry: %w", err)
	}

	s.invalidateStats(ctx, entry.UserID)
	s.notifier.Notify(domain.NewEntryEvent(domain.EntryLogged, entry, s.now()))

	s.log.Info().
		Str("entry_id", entry.ID).
		Str("user_id", entry.UserID).
		Str("meal", string(entry.Meal)).
		Float64("calories", entry.NutrientProfile.Calories).
		Msg("food entry logged")
	return entry, nil
}

// ListEntries returns a page of one user's entries. Reading another user's
// log requires an admin caller.
func (s *EntryService) ListEntries(ctx context.Context, in ports.ListEntriesInput) (*ports.ListEntriesResult, error) {
	if in.Caller.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	userID := in.UserID
	if userID == "" {
		userID = in.Caller.UserID
	}
	if !in.Caller.CanAccess(userID) {
		return nil, domain.ErrForbidden
	}

	filter := ports.EntryFilter{UserID: userID}
	result := &ports.ListEntriesResult{}

	r, err := s.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if r != nil {
		filter.Range = r
		result.Date = r.From.Format(dateLayout)
	}

	if m := strings.TrimSpace(in.Meal); m != "" && !strings.EqualFold(m, filterAll) {
		meal, err := domain.ParseMeal(m)
		if err != nil {
			return nil, err
		}
		filter.Meal = &meal
	}

	page, err := entryPage(in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.Find(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	result.Entries = entries
	result.TotalCalories = TotalCalories(entries)
	result.EntryCount = EntryCount(entries)
	return result, nil
}

// DeleteEntry removes an entry owned by the caller. Admins may delete any entry.
func (s *EntryService) DeleteEntry(ctx context.Context, caller ports.Caller, id string) (*domain.FoodEntry, error) {
	if caller.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	owner := caller.UserID
	if caller.IsAdmin {
		owner = ""
	}

	deleted, err := s.entries.Delete(ctx, id, owner)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidID) {
			s.log.Error().Err(err).Str("entry_id", id).Msg("failed to delete food entry")
		}
		return nil, fmt.Errorf("delete entry: %w", err)
	}

	s.invalidateStats(ctx, deleted.UserID)
	s.notifier.Notify(domain.NewEntryEvent(domain.EntryDeleted, deleted, s.now()))

	s.log.Info().Str("entry_id", deleted.ID).Str("user_id", deleted.UserID).Msg("food entry deleted")
	return deleted, nil
}

// Analyze estimates foodText without storing anything.
func (s *EntryService) Analyze(_ context.Context, foodText string) (*ports.AnalysisResult, error) {
	text := strings.TrimSpace(foodText)
	if err := validateFoodText(text); err != nil {
		return nil, err
	}

	res := &ports.AnalysisResult{}
	if rule, ok := domain.MatchRule(text); ok {
		res.Profile = rule.Profile
		res.Rule = rule.Name
	} else {
		res.Profile = domain.DefaultProfile.Clone()
	}
	res.MacroSplit = res.Profile.MacroSplit()
	return res, nil
}

// parseDate resolves the date query parameter into a single calendar day.
// A nil range means no date restriction.
func (s *EntryService) parseDate(date string) (*domain.DateRange, error) {
	date = strings.TrimSpace(date)
	switch {
	case date == "" || strings.EqualFold(date, filterAll):
		return nil, nil
	case strings.EqualFold(date, dateToday):
		r := TodayRange(s.now(), s.loc)
		return &r, nil
	}

	day, err := time.ParseInLocation(dateLayout, date, s.loc)
	if err != nil {
		return nil, domain.NewValidationError("date", "date must be today, all or YYYY-MM-DD")
	}
	r := domain.DayRange(day, s.loc)
	return &r, nil
}

func (s *EntryService) invalidateStats(ctx context.Context, userID string) {
	if err := s.cache.Invalidate(ctx, userID, s.now().In(s.loc).Format(dateLayout)); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate stats cache")
	}
}

func validateFoodText(text string) error {
	switch {
	case text == "":
		return domain.NewValidationError("foodText", "foodText is required")
	case utf8.RuneCountInString(text) > domain.MaxFoodTextLen:
		return domain.NewValidationError("foodText", fmt.Sprintf("foodText must be at most %d characters", domain.MaxFoodTextLen))
	}
	return nil
}

func entryPage(limit, offset int) (ports.Pagination, error) {
	verr := &domain.ValidationError{}
	if limit < 0 {
		verr.Add("limit", "limit must be at least 0")
	}
	if offset < 0 {
		verr.Add("offset", "offset must be at least 0")
	}
	if err := verr.OrNil(); err != nil {
		return ports.Pagination{}, err
	}
	if limit == 0 {
		limit = defaultEntryLimit
	}
	if limit > maxEntryLimit {
		limit = maxEntryLimit
	}
	return ports.Pagination{Limit: limit, Offset: offset}, nil
}
