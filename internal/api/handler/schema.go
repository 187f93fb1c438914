package handler

import (
	"github.com/calora/calorie-tracker/internal/core/domain"
)

// --- Food entries ---

type createEntryRequest struct {
	FoodText string `json:"foodText"`
	Meal     string `json:"meal,omitempty"`
}

type analyzeRequest struct {
	FoodText string `json:"foodText"`
}

type analyzeResponse struct {
	NutrientProfile domain.NutrientProfile `json:"nutrientProfile"`
	MacroSplit      domain.MacroSplit      `json:"macroSplit"`
	Rule            string                 `json:"rule,omitempty"`
}

type listEntriesResponse struct {
	Entries       []*domain.FoodEntry `json:"entries"`
	TotalCalories float64             `json:"totalCalories"`
	EntryCount    int                 `json:"entryCount"`
	Date          string              `json:"date,omitempty"`
}

type deleteEntryResponse struct {
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

// --- Users ---

type registerUserRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Password      string  `json:"password,omitempty"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	ActivityLevel float64 `json:"activityLevel"`
}

// updateUserRequest is a partial update: absent fields are left untouched.
type updateUserRequest struct {
	Username      *string  `json:"username,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	ActivityLevel *float64 `json:"activityLevel,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

type userProfileResponse struct {
	User          *domain.User        `json:"user"`
	Stats         domain.UserStats    `json:"stats"`
	RecentEntries []*domain.FoodEntry `json:"recentEntries"`
}

type paginationResponse struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type listUsersResponse struct {
	Users       []*domain.User     `json:"users"`
	TotalUsers  int64              `json:"totalUsers"`
	ActiveUsers int64              `json:"activeUsers"`
	Pagination  paginationResponse `json:"pagination"`
}

type deactivateUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type trendResponse struct {
	Days   int                 `json:"days"`
	Totals []domain.DailyTotal `json:"totals"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// --- Calculator ---

type maintenanceRequest struct {
	Age      int     `json:"age"      validate:"required,gte=13,lte=120"`
	Height   float64 `json:"height"   validate:"required,gte=100,lte=250"`
	Weight   float64 `json:"weight"   validate:"required,gte=30,lte=300"`
	Gender   string  `json:"gender"   validate:"required,oneof=male female"`
	Activity float64 `json:"activity" validate:"required,gte=1.2,lte=1.9"`
}

type maintenanceResponse struct {
	BMR         float64 `json:"bmr"`
	Maintenance int     `json:"maintenance"`
}
