package repository

import (
	"context"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// CashRegisterRepository define el puerto de persistencia para cajas (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si no existe.
type CashRegisterRepository interface {
	Create(ctx context.Context, register *entity.CashRegister) error
	GetByID(ctx context.Context, id string) (*entity.CashRegister, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.CashRegister, error)
	ListByLocation(ctx context.Context, locationID string, includeInactive bool) ([]*entity.CashRegister, error)
	Update(ctx context.Context, register *entity.CashRegister) error
	// ClearMain quita la marca de principal a las cajas de la sucursal, excepto exceptID.
	ClearMain(ctx context.Context, locationID, exceptID string) error
}
