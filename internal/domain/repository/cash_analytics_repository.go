package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ShiftTotals agregados de los turnos cerrados de una sucursal en un rango [From, To).
type ShiftTotals struct {
	ClosedShifts     int
	TotalSales       decimal.Decimal
	TotalRefunds     decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	NetDiscrepancy   decimal.Decimal // suma con signo de los descuadres
	ShortCount       int             // cierres con faltante
	OverCount        int             // cierres con sobrante
}

// CashAnalyticsRepository consultas de solo lectura para el tablero de caja.
type CashAnalyticsRepository interface {
	GetClosedShiftTotals(ctx context.Context, locationID string, from, to time.Time) (ShiftTotals, error)
	CountOpenShifts(ctx context.Context, locationID string) (int, error)
}
