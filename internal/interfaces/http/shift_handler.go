package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/application/shift"
)

// ShiftHandler maneja turnos y su libro de movimientos (protegido).
type ShiftHandler struct {
	uc *shift.UseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *shift.UseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir turno
// @Description  Crea el turno y su movimiento de apertura en una sola transacción.
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OpenShiftRequest  true  "cash_register_id, opening_amount, notes"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts [post]
func (h *ShiftHandler) Open(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.OpenShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.OpenShift(c.UserContext(), shift.OpenShiftInput{
		RegisterID:    in.CashRegisterID,
		UserID:        userID,
		OpeningAmount: in.OpeningAmount,
		Notes:         in.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Current godoc
// @Summary      Turno abierto del usuario del token
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CurrentShiftResponse
// @Router       /api/shifts/current [get]
func (h *ShiftHandler) Current(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.CurrentShiftByUser(c.UserContext(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CurrentShiftResponse{Shift: out})
}

// GetByID godoc
// @Summary      Obtener turno
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del turno"
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [get]
func (h *ShiftHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetShift(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar turno
// @Description  Calcula lo esperado, registra la diferencia contra lo contado y cierra.
// @Description  Una diferencia distinta de cero no impide el cierre. Gerente y admin pueden cerrar turnos ajenos.
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "ID del turno"
// @Param        body  body      dto.CloseShiftRequest  true  "counted_amount, notes"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/close [post]
func (h *ShiftHandler) Close(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CloseShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CloseShift(c.UserContext(), shift.CloseShiftInput{
		ShiftID:       c.Params("id"),
		UserID:        userID,
		CountedAmount: in.CountedAmount,
		Notes:         in.Notes,
		Override:      canOverride(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen del turno
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del turno"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/summary [get]
func (h *ShiftHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summarize(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte del turno
// @Description  Proyección de solo lectura para impresión o exportación. Incluye el arqueo si el turno está cerrado.
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del turno"
// @Success      200  {object}  dto.ShiftReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/report [get]
func (h *ShiftHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.BuildReport(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Annotate godoc
// @Summary      Anotar reporte de un turno cerrado
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID del turno"
// @Param        body  body      dto.AnnotateShiftRequest  true  "notes"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/annotations [put]
func (h *ShiftHandler) Annotate(c *fiber.Ctx) error {
	var in dto.AnnotateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AnnotateShift(c.UserContext(), c.Params("id"), in.Notes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecordMovement godoc
// @Summary      Registrar movimiento de efectivo
// @Description  type: sale | refund | deposit | withdrawal. amount > 0; el signo lo aplica el tipo.
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID del turno"
// @Param        body  body      dto.RecordMovementRequest  true  "type, amount, description, payment_method_id, sale_id, metadata"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/movements [post]
func (h *ShiftHandler) RecordMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordMovement(c.UserContext(), shift.RecordMovementInput{
		ShiftID:         c.Params("id"),
		UserID:          userID,
		Type:            in.Type,
		Amount:          in.Amount,
		Description:     in.Description,
		PaymentMethodID: in.PaymentMethodID,
		SaleID:          in.SaleID,
		Metadata:        in.Metadata,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Libro de movimientos del turno
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del turno"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/movements [get]
func (h *ShiftHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteMovement godoc
// @Summary      Eliminar ingreso o retiro manual
// @Description  Solo deposit y withdrawal de un turno abierto.
// @Tags         shifts
// @Security     Bearer
// @Param        id          path  string  true  "ID del turno"
// @Param        movementId  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/movements/{movementId} [delete]
func (h *ShiftHandler) DeleteMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	if err := h.uc.DeleteMovement(c.UserContext(), c.Params("id"), c.Params("movementId"), userID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
