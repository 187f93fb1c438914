package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calora/calorie-tracker/internal/core/domain"
)

// CalculatorHandler exposes the energy-need formulas without touching storage.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Maintenance handles POST /calculate-maintenance.
//
// @Summary      Calculate maintenance calories
// @Description  Mifflin-St Jeor BMR multiplied by the activity factor.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body      maintenanceRequest  true  "Biometrics"
// @Success      200   {object}  maintenanceResponse
// @Failure      400   {object}  map[string]any
// @Router       /calculate-maintenance [post]
func (h *CalculatorHandler) Maintenance(c echo.Context) error {
	var req maintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bmr, err := domain.BasalMetabolicRate(req.Weight, req.Height, req.Age, domain.Gender(req.Gender))
	if err != nil {
		return err
	}
	kcal, err := domain.MaintenanceCalories(bmr, req.Activity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, maintenanceResponse{BMR: bmr, Maintenance: kcal})
}
