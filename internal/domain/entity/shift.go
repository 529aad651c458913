package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift turno de caja: periodo entre apertura y cierre de una caja.
// Abierto mientras ClosedAt es nil; inmutable después del cierre salvo ReportNotes.
type Shift struct {
	ID             string
	CashRegisterID string
	OpenedBy       string
	OpeningAmount  decimal.Decimal
	OpeningNotes   string
	OpenedAt       time.Time

	ClosedBy      string
	ClosingAmount *decimal.Decimal // efectivo contado al cierre
	ClosingNotes  string
	ClosedAt      *time.Time

	// Resumen derivado, estampado al cierre.
	ExpectedAmount   *decimal.Decimal
	Discrepancy      *decimal.Decimal
	SalesCount       int
	TotalSales       decimal.Decimal
	TotalRefunds     decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal

	ReportNotes string
	// ReportVersion sube con cada anotación; forma parte de la llave del reporte en cache.
	ReportVersion int
}

// IsOpen indica si el turno no tiene cierre.
func (s *Shift) IsOpen() bool {
	return s.ClosedAt == nil
}
