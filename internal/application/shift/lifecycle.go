package shift

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/cash"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

// OpenShiftInput entrada para abrir un turno.
type OpenShiftInput struct {
	RegisterID    string
	UserID        string
	OpeningAmount decimal.Decimal
	Notes         string
}

// CloseShiftInput entrada para cerrar un turno.
// Override permite cerrar el turno de otro usuario (gerente/admin).
type CloseShiftInput struct {
	ShiftID       string
	UserID        string
	CountedAmount decimal.Decimal
	Notes         string
	Override      bool
}

// OpenShift abre un turno en la caja y siembra su libro con el movimiento de apertura,
// ambas escrituras en la misma transacción.
func (uc *UseCase) OpenShift(ctx context.Context, in OpenShiftInput) (*dto.ShiftResponse, error) {
	if strings.TrimSpace(in.RegisterID) == "" || strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: cash_register_id y usuario son requeridos", domain.ErrValidation)
	}
	if err := uc.validateAmount("opening_amount", in.OpeningAmount, true); err != nil {
		return nil, err
	}

	now := uc.now()
	shift := &entity.Shift{
		ID:               uuid.New().String(),
		CashRegisterID:   in.RegisterID,
		OpenedBy:         in.UserID,
		OpeningAmount:    in.OpeningAmount,
		OpeningNotes:     strings.TrimSpace(in.Notes),
		OpenedAt:         now,
		TotalSales:       decimal.Zero,
		TotalRefunds:     decimal.Zero,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
	}
	opening := &entity.CashMovement{
		ID:          uuid.New().String(),
		ShiftID:     shift.ID,
		UserID:      in.UserID,
		Type:        entity.CashMovementOpening,
		Amount:      cash.SignedAmount(entity.CashMovementOpening, in.OpeningAmount),
		Description: "Fondo inicial",
		Metadata:    map[string]any{},
		CreatedAt:   now,
	}

	err := uc.txRunner.RunCash(ctx, func(
		registerRepo repository.CashRegisterRepository,
		shiftRepo repository.ShiftRepository,
		movRepo repository.CashMovementRepository,
	) error {
		// Bloquear la caja serializa aperturas concurrentes y la desactivación.
		reg, err := registerRepo.GetForUpdate(ctx, in.RegisterID)
		if err != nil {
			return err
		}
		if reg == nil {
			return fmt.Errorf("%w: caja %s", domain.ErrNotFound, in.RegisterID)
		}
		if !reg.IsActive {
			return fmt.Errorf("%w: la caja %s está desactivada", domain.ErrConflict, reg.ID)
		}
		current, err := shiftRepo.GetOpenByRegister(ctx, reg.ID)
		if err != nil {
			return err
		}
		if current != nil {
			return fmt.Errorf("%w: la caja ya tiene el turno %s abierto", domain.ErrConflict, current.ID)
		}
		// El índice único parcial sigue siendo la garantía final ante carreras.
		if err := shiftRepo.Create(ctx, shift); err != nil {
			return err
		}
		return movRepo.Create(ctx, opening)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("shift_id", shift.ID).
		Str("register_id", shift.CashRegisterID).
		Str("user_id", shift.OpenedBy).
		Str("opening_amount", uc.currency.Format(shift.OpeningAmount)).
		Msg("turno abierto")
	return toShiftResponse(shift, nil), nil
}

// CloseShift cierra el turno: calcula lo esperado a partir del libro, registra la diferencia
// contra lo contado, agrega el movimiento de cierre y estampa el resumen.
// Una diferencia distinta de cero solo se advierte; el cierre siempre procede.
func (uc *UseCase) CloseShift(ctx context.Context, in CloseShiftInput) (*dto.ShiftResponse, error) {
	if strings.TrimSpace(in.ShiftID) == "" || strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: turno y usuario son requeridos", domain.ErrValidation)
	}
	if err := uc.validateAmount("counted_amount", in.CountedAmount, true); err != nil {
		return nil, err
	}

	var (
		closed  *entity.Shift
		summary cash.Summary
		rec     cash.Reconciliation
	)
	err := uc.txRunner.RunCash(ctx, func(
		_ repository.CashRegisterRepository,
		shiftRepo repository.ShiftRepository,
		movRepo repository.CashMovementRepository,
	) error {
		shift, err := shiftRepo.GetForUpdate(ctx, in.ShiftID)
		if err != nil {
			return err
		}
		if shift == nil || !shift.IsOpen() {
			return fmt.Errorf("%w: no hay turno abierto %s", domain.ErrNotFound, in.ShiftID)
		}
		if shift.OpenedBy != in.UserID && !in.Override {
			return fmt.Errorf("%w: solo quien abrió el turno puede cerrarlo", domain.ErrForbidden)
		}

		movements, err := movRepo.ListByShift(ctx, shift.ID)
		if err != nil {
			return err
		}
		summary = cash.Summarize(shift.OpeningAmount, movements)
		rec = cash.Reconcile(summary, in.CountedAmount)

		now := uc.now()
		closing := &entity.CashMovement{
			ID:          uuid.New().String(),
			ShiftID:     shift.ID,
			UserID:      in.UserID,
			Type:        entity.CashMovementClosing,
			Amount:      cash.SignedAmount(entity.CashMovementClosing, in.CountedAmount),
			Description: "Arqueo de cierre",
			Metadata: map[string]any{
				"expected":    rec.Expected.StringFixed(uc.currency.Scale()),
				"discrepancy": rec.Discrepancy.StringFixed(uc.currency.Scale()),
				"outcome":     rec.Outcome,
			},
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, closing); err != nil {
			return err
		}
		summary = cash.Summarize(shift.OpeningAmount, append(movements, closing))

		counted := in.CountedAmount
		expected := rec.Expected
		discrepancy := rec.Discrepancy
		shift.ClosedBy = in.UserID
		shift.ClosingAmount = &counted
		shift.ClosingNotes = strings.TrimSpace(in.Notes)
		shift.ClosedAt = &now
		shift.ExpectedAmount = &expected
		shift.Discrepancy = &discrepancy
		shift.SalesCount = summary.SalesCount
		shift.TotalSales = summary.TotalSales
		shift.TotalRefunds = summary.TotalRefunds
		shift.TotalDeposits = summary.TotalDeposits
		shift.TotalWithdrawals = summary.TotalWithdrawals
		if err := shiftRepo.Close(ctx, shift); err != nil {
			return err
		}
		closed = shift
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := uc.log.Info()
	if !rec.Discrepancy.IsZero() {
		ev = uc.log.Warn()
	}
	ev.Str("shift_id", closed.ID).
		Str("register_id", closed.CashRegisterID).
		Str("closed_by", closed.ClosedBy).
		Str("expected", uc.currency.Format(rec.Expected)).
		Str("counted", uc.currency.Format(rec.Counted)).
		Str("discrepancy", uc.currency.Format(rec.Discrepancy)).
		Str("outcome", rec.Outcome).
		Msg("turno cerrado")

	return toShiftResponse(closed, &summary), nil
}

// CurrentShiftByRegister turno abierto de la caja, o nil si no hay. ErrNotFound si la caja no existe.
func (uc *UseCase) CurrentShiftByRegister(ctx context.Context, registerID string) (*dto.ShiftResponse, error) {
	reg, err := uc.registerRepo.GetByID(ctx, registerID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: caja %s", domain.ErrNotFound, registerID)
	}
	shift, err := uc.shiftRepo.GetOpenByRegister(ctx, registerID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, nil
	}
	return toShiftResponse(shift, nil), nil
}

// CurrentShiftByUser turno abierto por el usuario, o nil si no hay.
func (uc *UseCase) CurrentShiftByUser(ctx context.Context, userID string) (*dto.ShiftResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: usuario requerido", domain.ErrValidation)
	}
	shift, err := uc.shiftRepo.GetOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, nil
	}
	return toShiftResponse(shift, nil), nil
}

// GetShift obtiene un turno por ID.
func (uc *UseCase) GetShift(ctx context.Context, shiftID string) (*dto.ShiftResponse, error) {
	shift, err := uc.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	return toShiftResponse(shift, nil), nil
}

// ListShifts historial de turnos de una caja, más reciente primero.
func (uc *UseCase) ListShifts(ctx context.Context, registerID string, limit, offset int) (*dto.ShiftListResponse, error) {
	reg, err := uc.registerRepo.GetByID(ctx, registerID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: caja %s", domain.ErrNotFound, registerID)
	}
	list, err := uc.shiftRepo.ListByRegister(ctx, registerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShiftResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShiftResponse(s, nil))
	}
	return &dto.ShiftListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AnnotateShift guarda notas de reporte en un turno cerrado (única mutación permitida tras el cierre).
func (uc *UseCase) AnnotateShift(ctx context.Context, shiftID, notes string) (*dto.ShiftResponse, error) {
	var (
		out      *entity.Shift
		staleKey string
	)
	err := uc.txRunner.RunCash(ctx, func(
		_ repository.CashRegisterRepository,
		shiftRepo repository.ShiftRepository,
		_ repository.CashMovementRepository,
	) error {
		shift, err := shiftRepo.GetForUpdate(ctx, shiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return fmt.Errorf("%w: turno %s", domain.ErrNotFound, shiftID)
		}
		if shift.IsOpen() {
			return fmt.Errorf("%w: solo se anotan turnos cerrados", domain.ErrConflict)
		}
		staleKey = reportKey(shift)
		shift.ReportNotes = strings.TrimSpace(notes)
		if err := shiftRepo.UpdateReportNotes(ctx, shift.ID, shift.ReportNotes); err != nil {
			return err
		}
		shift.ReportVersion++
		out = shift
		return nil
	})
	if err != nil {
		return nil, err
	}
	// la versión nueva ya no coincide con la llave vieja; borrarla solo libera espacio
	if err := uc.cache.Delete(ctx, staleKey); err != nil {
		uc.log.Warn().Err(err).Str("shift_id", shiftID).Msg("invalidar reporte en cache")
	}
	return toShiftResponse(out, nil), nil
}

func (uc *UseCase) getShift(ctx context.Context, shiftID string) (*entity.Shift, error) {
	if strings.TrimSpace(shiftID) == "" {
		return nil, fmt.Errorf("%w: turno requerido", domain.ErrValidation)
	}
	shift, err := uc.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, fmt.Errorf("%w: turno %s", domain.ErrNotFound, shiftID)
	}
	return shift, nil
}

// validateAmount rechaza montos negativos (o cero si !allowZero) y con más decimales que la moneda.
func (uc *UseCase) validateAmount(field string, amount decimal.Decimal, allowZero bool) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrValidation, field)
	}
	if !allowZero && amount.IsZero() {
		return fmt.Errorf("%w: %s debe ser mayor que cero", domain.ErrValidation, field)
	}
	if err := uc.currency.Validate(amount); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrValidation, field, err)
	}
	return nil
}
