package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Caja-api/internal/application/analytics"
	"github.com/jhoicas/Caja-api/internal/application/register"
	"github.com/jhoicas/Caja-api/internal/application/shift"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterUC *register.UseCase
	ShiftUC    *shift.UseCase
	// DashboardUC opcional; sin él no se expone /api/dashboard.
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	adminOnly := RequireRole(RoleAdmin)

	registers := api.Group("/cash-registers")
	registerHandler := NewCashRegisterHandler(deps.RegisterUC, deps.ShiftUC)
	registers.Post("/", adminOnly, registerHandler.Create)
	registers.Get("/", registerHandler.List)
	registers.Get("/:id", registerHandler.GetByID)
	registers.Put("/:id", adminOnly, registerHandler.Rename)
	registers.Post("/:id/deactivate", adminOnly, registerHandler.Deactivate)
	registers.Post("/:id/activate", adminOnly, registerHandler.Activate)
	registers.Post("/:id/main", adminOnly, registerHandler.SetMain)
	registers.Get("/:id/current-shift", registerHandler.CurrentShift)
	registers.Get("/:id/shifts", registerHandler.ListShifts)

	shifts := api.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Post("/", shiftHandler.Open)
	shifts.Get("/current", shiftHandler.Current)
	shifts.Get("/:id", shiftHandler.GetByID)
	shifts.Post("/:id/close", shiftHandler.Close)
	shifts.Get("/:id/summary", shiftHandler.Summary)
	shifts.Get("/:id/report", shiftHandler.Report)
	shifts.Put("/:id/annotations", RequireRole(RoleAdmin, RoleGerente), shiftHandler.Annotate)
	shifts.Post("/:id/movements", shiftHandler.RecordMovement)
	shifts.Get("/:id/movements", shiftHandler.ListMovements)
	shifts.Delete("/:id/movements/:movementId", shiftHandler.DeleteMovement)

	if deps.DashboardUC != nil {
		dashboardHandler := NewDashboardHandler(deps.DashboardUC)
		api.Get("/dashboard/cash", RequireRole(RoleAdmin, RoleGerente), dashboardHandler.GetCashSummary)
	}
}
