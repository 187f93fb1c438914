package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/calora/calorie-tracker/internal/api/middleware"
	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubEntryService struct {
	logFn     func(ctx context.Context, in ports.LogEntryInput) (*domain.FoodEntry, error)
	listFn    func(ctx context.Context, in ports.ListEntriesInput) (*ports.ListEntriesResult, error)
	deleteFn  func(ctx context.Context, caller ports.Caller, id string) (*domain.FoodEntry, error)
	analyzeFn func(ctx context.Context, text string) (*ports.AnalysisResult, error)
}

func (s *stubEntryService) LogEntry(ctx context.Context, in ports.LogEntryInput) (*domain.FoodEntry, error) {
	return s.logFn(ctx, in)
}

func (s *stubEntryService) ListEntries(ctx context.Context, in ports.ListEntriesInput) (*ports.ListEntriesResult, error) {
	return s.listFn(ctx, in)
}

func (s *stubEntryService) DeleteEntry(ctx context.Context, caller ports.Caller, id string) (*domain.FoodEntry, error) {
	return s.deleteFn(ctx, caller, id)
}

func (s *stubEntryService) Analyze(ctx context.Context, text string) (*ports.AnalysisResult, error) {
	return s.analyzeFn(ctx, text)
}

type stubUserService struct {
	registerFn   func(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error)
	profileFn    func(ctx context.Context, caller ports.Caller, id string) (*ports.UserProfile, error)
	updateFn     func(ctx context.Context, caller ports.Caller, id string, patch domain.UserPatch) (*domain.User, error)
	deactivateFn func(ctx context.Context, caller ports.Caller, id string) (*domain.User, error)
	listFn       func(ctx context.Context, in ports.ListUsersInput) (*ports.ListUsersResult, error)
	balanceFn    func(ctx context.Context, caller ports.Caller, id string) (*domain.CalorieBalance, error)
	trendFn      func(ctx context.Context, caller ports.Caller, id string, days int) ([]domain.DailyTotal, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) GetProfile(ctx context.Context, caller ports.Caller, id string) (*ports.UserProfile, error) {
	return s.profileFn(ctx, caller, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, caller ports.Caller, id string, patch domain.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, caller, id, patch)
}

func (s *stubUserService) DeactivateUser(ctx context.Context, caller ports.Caller, id string) (*domain.User, error) {
	return s.deactivateFn(ctx, caller, id)
}

func (s *stubUserService) ListUsers(ctx context.Context, in ports.ListUsersInput) (*ports.ListUsersResult, error) {
	return s.listFn(ctx, in)
}

func (s *stubUserService) TodayBalance(ctx context.Context, caller ports.Caller, id string) (*domain.CalorieBalance, error) {
	return s.balanceFn(ctx, caller, id)
}

func (s *stubUserService) Trend(ctx context.Context, caller ports.Caller, id string, days int) ([]domain.DailyTotal, error) {
	return s.trendFn(ctx, caller, id, days)
}

// newContext builds an echo context for target. A non-empty body is sent as JSON.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asCaller marks c as authenticated the way the Auth middleware does.
func asCaller(c echo.Context, userID string, admin bool) {
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxIsAdmin, admin)
}
