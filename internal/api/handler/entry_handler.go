package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calora/calorie-tracker/internal/api/metrics"
	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

// EntryHandler handles HTTP requests for food entries.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Create handles POST /food-entries.
//
// @Summary      Log a food entry
// @Description  Estimates the nutrient profile of the description and stores it for the caller.
// @Tags         food-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEntryRequest  true  "Food description and optional meal"
// @Success      201   {object}  domain.FoodEntry
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /food-entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	entry, err := h.service.LogEntry(c.Request().Context(), ports.LogEntryInput{
		Caller:   caller,
		FoodText: req.FoodText,
		Meal:     req.Meal,
	})
	if err != nil {
		return err
	}

	rule, _ := domain.MatchRule(entry.FoodText)
	metrics.EntriesLoggedTotal.WithLabelValues(string(entry.Meal)).Inc()
	metrics.LoggedCalories.Observe(entry.NutrientProfile.Calories)
	metrics.EstimatorConfidence.WithLabelValues(ruleLabel(rule.Name)).Observe(entry.NutrientProfile.Confidence)

	return c.JSON(http.StatusCreated, entry)
}

// Analyze handles POST /food-entries/analyze.
//
// @Summary      Estimate a food description
// @Description  Returns the nutrient profile and macro split without storing anything.
// @Tags         food-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      analyzeRequest  true  "Food description"
// @Success      200   {object}  analyzeResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /food-entries/analyze [post]
func (h *EntryHandler) Analyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.Analyze(c.Request().Context(), req.FoodText)
	if err != nil {
		return err
	}
	metrics.EstimatorConfidence.WithLabelValues(ruleLabel(res.Rule)).Observe(res.Profile.Confidence)

	return c.JSON(http.StatusOK, analyzeResponse{
		NutrientProfile: res.Profile,
		MacroSplit:      res.MacroSplit,
		Rule:            res.Rule,
	})
}

// List handles GET /food-entries.
//
// @Summary      List food entries
// @Description  Entries are returned newest first. Other users' entries require an admin token.
// @Tags         food-entries
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  false  "Owner id (defaults to the caller)"
// @Param        date    query     string  false  "today, YYYY-MM-DD or all"
// @Param        meal    query     string  false  "breakfast, lunch, dinner, snack or all"
// @Param        limit   query     int     false  "Page size (default 50, max 100)"
// @Param        offset  query     int     false  "Entries to skip"
// @Success      200     {object}  listEntriesResponse
// @Failure      400     {object}  map[string]any
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Router       /food-entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return err
	}

	res, err := h.service.ListEntries(c.Request().Context(), ports.ListEntriesInput{
		Caller: caller,
		UserID: c.QueryParam("userId"),
		Date:   c.QueryParam("date"),
		Meal:   c.QueryParam("meal"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listEntriesResponse{
		Entries:       entriesOrEmpty(res.Entries),
		TotalCalories: res.TotalCalories,
		EntryCount:    res.EntryCount,
		Date:          res.Date,
	})
}

// Delete handles DELETE /food-entries/:id.
//
// @Summary      Delete a food entry
// @Tags         food-entries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  deleteEntryResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /food-entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteEntry(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.EntriesDeletedTotal.Inc()

	return c.JSON(http.StatusOK, deleteEntryResponse{
		Message:   "Food entry deleted",
		DeletedID: deleted.ID,
	})
}
