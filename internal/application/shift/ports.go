package shift

import (
	"context"
	"time"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repositorios de caja atados a ella.
// Si fn devuelve error se hace rollback: ninguna escritura parcial queda persistida.
type TxRunner interface {
	RunCash(ctx context.Context, fn func(
		registerRepo repository.CashRegisterRepository,
		shiftRepo repository.ShiftRepository,
		movRepo repository.CashMovementRepository,
	) error) error
}

// ReportCache guarda reportes de turnos cerrados (inmutables salvo anotaciones).
// La llave incluye la versión del reporte del turno; ver reportKey.
type ReportCache interface {
	Get(ctx context.Context, key string) (*dto.ShiftReportResponse, bool, error)
	Set(ctx context.Context, key string, report *dto.ShiftReportResponse, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopReportCache no guarda nada; cada reporte se arma desde la base.
type NoopReportCache struct{}

func (NoopReportCache) Get(context.Context, string) (*dto.ShiftReportResponse, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(context.Context, string, *dto.ShiftReportResponse, time.Duration) error {
	return nil
}

func (NoopReportCache) Delete(context.Context, string) error { return nil }
