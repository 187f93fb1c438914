package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calora/calorie-tracker/internal/api/metrics"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /users.
//
// @Summary      Register a user
// @Description  Maintenance calories are derived from the biometric fields.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Profile and biometrics"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}
	metrics.UsersRegisteredTotal.Inc()

	return c.JSON(http.StatusCreated, user)
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Partial username or email"
// @Param        active  query     bool    false  "Filter by isActive"
// @Param        admin   query     bool    false  "Only administrators"
// @Param        limit   query     int     false  "Page size (default 20, max 100)"
// @Param        offset  query     int     false  "Users to skip"
// @Success      200     {object}  listUsersResponse
// @Failure      400     {object}  map[string]any
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	active, err := queryBool(c, "active")
	if err != nil {
		return err
	}
	adminOnly, err := queryBool(c, "admin")
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

	res, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Caller:    caller,
		Search:    c.QueryParam("search"),
		Active:    active,
		AdminOnly: adminOnly != nil && *adminOnly,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Users:       usersOrEmpty(res.Users),
		TotalUsers:  res.TotalUsers,
		ActiveUsers: res.ActiveUsers,
		Pagination: paginationResponse{
			Limit:   res.Limit,
			Offset:  res.Offset,
			HasMore: res.HasMore,
		},
	})
}

// Get handles GET /users/:id.
//
// @Summary      Get a user profile
// @Description  Includes lifetime stats and the five most recent entries.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userProfileResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userProfileResponse{
		User:          profile.User,
		Stats:         profile.Stats,
		RecentEntries: entriesOrEmpty(profile.RecentEntries),
	})
}

// Update handles PUT /users/:id.
//
// @Summary      Update a user profile
// @Description  Only the fields present are changed. isActive requires an admin token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateUser(c.Request().Context(), caller, c.Param("id"), toUserPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Deactivate handles DELETE /users/:id. Users are never hard deleted.
//
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  deactivateUserResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Deactivate(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	user, err := h.service.DeactivateUser(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.UsersDeactivatedTotal.Inc()

	return c.JSON(http.StatusOK, deactivateUserResponse{
		Message: "User deactivated",
		User:    user,
	})
}

// Balance handles GET /users/:id/balance.
//
// @Summary      Today's calorie balance
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.CalorieBalance
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /users/{id}/balance [get]
func (h *UserHandler) Balance(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	balance, err := h.service.TodayBalance(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, balance)
}

// Trend handles GET /users/:id/trend.
//
// @Summary      Daily calorie totals
// @Description  One row per calendar day, oldest first. Days without entries report zero.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true   "User id"
// @Param        days  query     int     false  "Window size (default 7, max 90)"
// @Success      200   {object}  trendResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/trend [get]
func (h *UserHandler) Trend(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	days, err := queryInt(c, "days")
	if err != nil {
		return err
	}

	totals, err := h.service.Trend(c.Request().Context(), caller, c.Param("id"), days)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trendResponse{Days: len(totals), Totals: totals})
}
