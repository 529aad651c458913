package repository

import (
	"context"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para turnos.
// Los Get* devuelven (nil, nil) si no hay resultado.
type ShiftRepository interface {
	// Create inserta un turno abierto. Devuelve domain.ErrConflict si la caja ya tiene uno abierto
	// (restricción única a nivel de almacenamiento).
	Create(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, id string) (*entity.Shift, error)
	// GetForUpdate bloquea la fila en modo exclusivo (cierre).
	GetForUpdate(ctx context.Context, id string) (*entity.Shift, error)
	// GetForShare bloquea la fila en modo compartido (altas en el libro).
	GetForShare(ctx context.Context, id string) (*entity.Shift, error)
	GetOpenByRegister(ctx context.Context, registerID string) (*entity.Shift, error)
	GetOpenByUser(ctx context.Context, userID string) (*entity.Shift, error)
	ListByRegister(ctx context.Context, registerID string, limit, offset int) ([]*entity.Shift, error)
	// Close estampa cierre y resumen. Devuelve domain.ErrConflict si el turno ya estaba cerrado.
	Close(ctx context.Context, shift *entity.Shift) error
	// UpdateReportNotes reemplaza las notas e incrementa ReportVersion.
	UpdateReportNotes(ctx context.Context, id, notes string) error
}
