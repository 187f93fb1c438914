package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/calora/calorie-tracker/internal/api/middleware"
	"github.com/calora/calorie-tracker/internal/core/domain"
	"github.com/calora/calorie-tracker/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware. Requests
// that reach a protected handler without one are rejected before any service
// call.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return ports.Caller{}, domain.ErrUnauthenticated
	}
	admin, _ := c.Get(middleware.CtxIsAdmin).(bool)
	return ports.Caller{UserID: userID, IsAdmin: admin}, nil
}
