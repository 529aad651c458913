package repository

import (
	"context"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// CashMovementRepository define el puerto del libro de movimientos de efectivo (solo alta y baja).
type CashMovementRepository interface {
	Create(ctx context.Context, movement *entity.CashMovement) error
	GetByID(ctx context.Context, id string) (*entity.CashMovement, error)
	// ListByShift devuelve todos los movimientos del turno, del más antiguo al más reciente.
	ListByShift(ctx context.Context, shiftID string) ([]*entity.CashMovement, error)
	Delete(ctx context.Context, id string) error
}
