package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

func pizzaEntry() *domain.FoodEntry {
	return &domain.FoodEntry{
		ID:              "65f0c0ffee65f0c0ffee65f0",
		UserID:          "u1",
		FoodText:        "Pizza Margherita",
		NutrientProfile: domain.Estimate("Pizza Margherita"),
		Meal:            domain.MealDinner,
		CreatedAt:       time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC),
	}
}

func TestEntryHandler_Create_Success(t *testing.T) {
	stub := &stubEntryService{
		logFn: func(ctx context.Context, in ports.LogEntryInput) (*domain.FoodEntry, error) {
			if in.Caller.UserID != "u1" || in.FoodText != "Pizza Margherita" || in.Meal != "dinner" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return pizzaEntry(), nil
		},
	}
	handler := NewEntryHandler(stub)

	c, rec := newContext(http.MethodPost, "/food-entries", `{"foodText":"Pizza Margherita","meal":"dinner"}`)
	asCaller(c, "u1", false)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp domain.FoodEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.NutrientProfile.Calories != 650 || resp.Meal != domain.MealDinner {
		t.Fatalf("unexpected entry: %+v", resp)
	}
}

func TestEntryHandler_Create_RequiresCaller(t *testing.T) {
	stub := &stubEntryService{
		logFn: func(ctx context.Context, in ports.LogEntryInput) (*domain.FoodEntry, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEntryHandler(stub)

	c, _ := newContext(http.MethodPost, "/food-entries", `{"foodText":"apple"}`)
	if err := handler.Create(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestEntryHandler_Create_PassesServiceErrors(t *testing.T) {
	stub := &stubEntryService{
		logFn: func(ctx context.Context, in ports.LogEntryInput) (*domain.FoodEntry, error) {
			return nil, domain.NewValidationError("foodText", "foodText is required")
		},
	}
	handler := NewEntryHandler(stub)

	c, _ := newContext(http.MethodPost, "/food-entries", `{"foodText":"   "}`)
	asCaller(c, "u1", false)

	var verr *domain.ValidationError
	if err := handler.Create(c); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEntryHandler_Analyze(t *testing.T) {
	stub := &stubEntryService{
		analyzeFn: func(ctx context.Context, text string) (*ports.AnalysisResult, error) {
			p := domain.Estimate(text)
			return &ports.AnalysisResult{Profile: p, MacroSplit: p.MacroSplit(), Rule: "apple"}, nil
		},
	}
	handler := NewEntryHandler(stub)

	c, rec := newContext(http.MethodPost, "/food-entries/analyze", `{"foodText":"green apple"}`)
	asCaller(c, "u1", false)

	if err := handler.Analyze(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.NutrientProfile.Calories != 80 || resp.Rule != "apple" {
		t.Fatalf("unexpected analysis: %+v", resp)
	}
	if resp.MacroSplit.Carbs != 98 {
		t.Fatalf("expected carbs share 98, got %d", resp.MacroSplit.Carbs)
	}
}

func TestEntryHandler_List_ForwardsQuery(t *testing.T) {
	stub := &stubEntryService{
		listFn: func(ctx context.Context, in ports.ListEntriesInput) (*ports.ListEntriesResult, error) {
			if in.UserID != "u2" || in.Date != "2024-03-10" || in.Meal != "lunch" {
				t.Fatalf("unexpected filter: %+v", in)
			}
			if in.Limit != 10 || in.Offset != 5 || !in.Caller.IsAdmin {
				t.Fatalf("unexpected paging or caller: %+v", in)
			}
			return &ports.ListEntriesResult{Date: "2024-03-10"}, nil
		},
	}
	handler := NewEntryHandler(stub)

	c, rec := newContext(http.MethodGet, "/food-entries?userId=u2&date=2024-03-10&meal=lunch&limit=10&offset=5", "")
	asCaller(c, "admin", true)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	entries, ok := resp["entries"].([]any)
	if !ok || len(entries) != 0 {
		t.Fatalf("expected empty entries array, got %v", resp["entries"])
	}
	if resp["date"] != "2024-03-10" {
		t.Fatalf("expected resolved date, got %v", resp["date"])
	}
}

func TestEntryHandler_List_BadLimit(t *testing.T) {
	stub := &stubEntryService{
		listFn: func(ctx context.Context, in ports.ListEntriesInput) (*ports.ListEntriesResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEntryHandler(stub)

	c, _ := newContext(http.MethodGet, "/food-entries?limit=ten", "")
	asCaller(c, "u1", false)

	var verr *domain.ValidationError
	if err := handler.List(c); !errors.As(err, &verr) || verr.Fields["limit"] == "" {
		t.Fatalf("expected limit ValidationError, got %v", err)
	}
}

func TestEntryHandler_Delete(t *testing.T) {
	stub := &stubEntryService{
		deleteFn: func(ctx context.Context, caller ports.Caller, id string) (*domain.FoodEntry, error) {
			if id != "65f0c0ffee65f0c0ffee65f0" || caller.UserID != "u1" {
				t.Fatalf("unexpected args: %s %+v", id, caller)
			}
			return pizzaEntry(), nil
		},
	}
	handler := NewEntryHandler(stub)

	c, rec := newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("65f0c0ffee65f0c0ffee65f0")
	asCaller(c, "u1", false)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp deleteEntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DeletedID != "65f0c0ffee65f0c0ffee65f0" || resp.Message == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEntryHandler_Delete_NotFound(t *testing.T) {
	stub := &stubEntryService{
		deleteFn: func(ctx context.Context, caller ports.Caller, id string) (*domain.FoodEntry, error) {
			return nil, domain.ErrEntryNotFound
		},
	}
	handler := NewEntryHandler(stub)

	c, _ := newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("65f0c0ffee65f0c0ffee65f0")
	asCaller(c, "u1", false)

	if err := handler.Delete(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
