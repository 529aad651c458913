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

// RecordMovementInput entrada para registrar un movimiento. Amount es la magnitud (> 0).
type RecordMovementInput struct {
	ShiftID         string
	UserID          string
	Type            string
	Amount          decimal.Decimal
	Description     string
	PaymentMethodID string
	SaleID          string
	Metadata        map[string]any
}

// RecordMovement agrega un movimiento al libro de un turno abierto.
// opening y closing los genera el ciclo del turno y se rechazan aquí.
func (uc *UseCase) RecordMovement(ctx context.Context, in RecordMovementInput) (*dto.MovementResponse, error) {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if strings.TrimSpace(in.ShiftID) == "" || strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: turno y usuario son requeridos", domain.ErrValidation)
	}
	if !entity.IsValidCashMovementType(in.Type) {
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrValidation, in.Type)
	}
	if entity.IsSystemCashMovement(in.Type) {
		return nil, fmt.Errorf("%w: el movimiento %s lo genera el turno", domain.ErrValidation, in.Type)
	}
	if err := uc.validateAmount("amount", in.Amount, false); err != nil {
		return nil, err
	}
	meta := in.Metadata
	if meta == nil {
		meta = map[string]any{}
	}

	m := &entity.CashMovement{
		ID:              uuid.New().String(),
		ShiftID:         in.ShiftID,
		UserID:          in.UserID,
		Type:            in.Type,
		Amount:          cash.SignedAmount(in.Type, in.Amount),
		PaymentMethodID: strings.TrimSpace(in.PaymentMethodID),
		SaleID:          strings.TrimSpace(in.SaleID),
		Description:     strings.TrimSpace(in.Description),
		Metadata:        meta,
	}
	err := uc.txRunner.RunCash(ctx, func(
		_ repository.CashRegisterRepository,
		shiftRepo repository.ShiftRepository,
		movRepo repository.CashMovementRepository,
	) error {
		// FOR SHARE: varios registros concurrentes, pero ninguno se cuela tras el cierre.
		shift, err := shiftRepo.GetForShare(ctx, in.ShiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return fmt.Errorf("%w: turno %s", domain.ErrNotFound, in.ShiftID)
		}
		if !shift.IsOpen() {
			return fmt.Errorf("%w: el turno %s está cerrado", domain.ErrConflict, shift.ID)
		}
		m.CreatedAt = uc.now()
		return movRepo.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Debug().
		Str("shift_id", m.ShiftID).
		Str("movement_id", m.ID).
		Str("type", m.Type).
		Str("amount", m.Amount.String()).
		Msg("movimiento registrado")
	return toMovementResponse(m), nil
}

// ListMovements libro completo del turno, más antiguo primero.
func (uc *UseCase) ListMovements(ctx context.Context, shiftID string) (*dto.MovementListResponse, error) {
	if _, err := uc.getShift(ctx, shiftID); err != nil {
		return nil, err
	}
	list, err := uc.movRepo.ListByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// DeleteMovement elimina un ingreso o retiro capturado por error mientras el turno siga abierto.
// Ventas, devoluciones, apertura y cierre no se eliminan.
func (uc *UseCase) DeleteMovement(ctx context.Context, shiftID, movementID, userID string) error {
	var removed *entity.CashMovement
	err := uc.txRunner.RunCash(ctx, func(
		_ repository.CashRegisterRepository,
		shiftRepo repository.ShiftRepository,
		movRepo repository.CashMovementRepository,
	) error {
		shift, err := shiftRepo.GetForUpdate(ctx, shiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return fmt.Errorf("%w: turno %s", domain.ErrNotFound, shiftID)
		}
		m, err := movRepo.GetByID(ctx, movementID)
		if err != nil {
			return err
		}
		if m == nil || m.ShiftID != shift.ID {
			return fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, movementID)
		}
		if !shift.IsOpen() {
			return fmt.Errorf("%w: el turno %s está cerrado", domain.ErrConflict, shift.ID)
		}
		if !entity.IsManualCashMovement(m.Type) {
			return fmt.Errorf("%w: solo se eliminan ingresos y retiros manuales", domain.ErrConflict)
		}
		if err := movRepo.Delete(ctx, m.ID); err != nil {
			return err
		}
		removed = m
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().
		Str("shift_id", shiftID).
		Str("movement_id", removed.ID).
		Str("type", removed.Type).
		Str("amount", removed.Amount.String()).
		Str("deleted_by", userID).
		Msg("movimiento eliminado")
	return nil
}
