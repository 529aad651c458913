package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de efectivo.
const (
	CashMovementOpening    = "opening"    // fondo inicial (sistema)
	CashMovementSale       = "sale"       // venta cobrada
	CashMovementRefund     = "refund"     // devolución
	CashMovementDeposit    = "deposit"    // ingreso manual
	CashMovementWithdrawal = "withdrawal" // retiro manual
	CashMovementClosing    = "closing"    // arqueo de cierre (sistema)
)

// CashMovement evento de efectivo dentro de un turno. Solo se agrega; nunca se edita.
// Amount lleva signo según el tipo: negativo en refund y withdrawal.
type CashMovement struct {
	ID              string
	ShiftID         string
	UserID          string
	Type            string
	Amount          decimal.Decimal
	PaymentMethodID string
	SaleID          string
	Description     string
	Metadata        map[string]any
	CreatedAt       time.Time
}

// IsValidCashMovementType indica si t es uno de los seis tipos conocidos.
func IsValidCashMovementType(t string) bool {
	switch t {
	case CashMovementOpening, CashMovementSale, CashMovementRefund,
		CashMovementDeposit, CashMovementWithdrawal, CashMovementClosing:
		return true
	}
	return false
}

// IsManualCashMovement ingresos y retiros capturados a mano: los únicos que se pueden eliminar.
func IsManualCashMovement(t string) bool {
	return t == CashMovementDeposit || t == CashMovementWithdrawal
}

// IsSystemCashMovement movimientos generados por el ciclo del turno (apertura y cierre).
func IsSystemCashMovement(t string) bool {
	return t == CashMovementOpening || t == CashMovementClosing
}
