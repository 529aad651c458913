package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/application/register"
	"github.com/jhoicas/Caja-api/internal/application/shift"
)

// CashRegisterHandler maneja las peticiones HTTP de cajas (protegido).
type CashRegisterHandler struct {
	uc     *register.UseCase
	shifts *shift.UseCase
}

// NewCashRegisterHandler construye el handler.
func NewCashRegisterHandler(uc *register.UseCase, shifts *shift.UseCase) *CashRegisterHandler {
	return &CashRegisterHandler{uc: uc, shifts: shifts}
}

// Create godoc
// @Summary      Crear caja
// @Tags         cash-registers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCashRegisterRequest  true  "location_id, name, is_main"
// @Success      201   {object}  dto.CashRegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cash-registers [post]
func (h *CashRegisterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.LocationID == "" {
		in.LocationID = GetLocationID(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cajas de una sucursal
// @Description  Sin location_id se usa la sucursal del token.
// @Tags         cash-registers
// @Security     Bearer
// @Produce      json
// @Param        location_id       query  string  false  "Sucursal"
// @Param        include_inactive  query  bool    false  "Incluir desactivadas"
// @Success      200  {object}  dto.CashRegisterListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cash-registers [get]
func (h *CashRegisterHandler) List(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.uc.ListByLocation(c.UserContext(), locationID, c.QueryBool("include_inactive", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener caja
// @Tags         cash-registers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la caja"
// @Success      200  {object}  dto.CashRegisterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-registers/{id} [get]
func (h *CashRegisterHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Renombrar caja
// @Tags         cash-registers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "ID de la caja"
// @Param        body  body      dto.RenameCashRegisterRequest  true  "name"
// @Success      200   {object}  dto.CashRegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cash-registers/{id} [put]
func (h *CashRegisterHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameCashRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Rename(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar caja
// @Description  Falla con 409 si la caja tiene un turno abierto.
// @Tags         cash-registers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la caja"
// @Success      200  {object}  dto.CashRegisterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cash-registers/{id}/deactivate [post]
func (h *CashRegisterHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Reactivar caja
// @Tags         cash-registers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la caja"
// @Success      200  {object}  dto.CashRegisterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-registers/{id}/activate [post]
func (h *CashRegisterHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetMain godoc
// @Summary      Marcar caja principal de la sucursal
// @Tags         cash-registers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la caja"
// @Success      200  {object}  dto.CashRegisterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cash-registers/{id}/main [post]
func (h *CashRegisterHandler) SetMain(c *fiber.Ctx) error {
	out, err := h.uc.SetMain(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CurrentShift godoc
// @Summary      Turno abierto de la caja
// @Description  shift es null si la caja no tiene turno abierto.
// @Tags         cash-registers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la caja"
// @Success      200  {object}  dto.CurrentShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-registers/{id}/current-shift [get]
func (h *CashRegisterHandler) CurrentShift(c *fiber.Ctx) error {
	out, err := h.shifts.CurrentShiftByRegister(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CurrentShiftResponse{Shift: out})
}

// ListShifts godoc
// @Summary      Historial de turnos de la caja
// @Tags         cash-registers
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la caja"
// @Param        limit   query  int     false  "Máximo (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ShiftListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-registers/{id}/shifts [get]
func (h *CashRegisterHandler) ListShifts(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}.Normalize()
	out, err := h.shifts.ListShifts(c.UserContext(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
