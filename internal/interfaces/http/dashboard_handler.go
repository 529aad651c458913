package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Caja-api/internal/application/analytics"
)

// DashboardHandler maneja el tablero de caja.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetCashSummary godoc
// @Summary      Tablero de cierres de caja de una sucursal
// @Description  Cierres del día y del mes en curso más los turnos abiertos. Sin location_id se usa la sucursal del token.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        location_id  query     string  false  "Sucursal"
// @Success      200          {object}  dto.CashDashboardResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      403          {object}  dto.ErrorResponse
// @Router       /api/dashboard/cash [get]
func (h *DashboardHandler) GetCashSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext(), c.Query("location_id", GetLocationID(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
