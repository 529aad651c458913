// Package cash reúne los servicios de dominio del arqueo: reducción del libro de
// movimientos a totales y conciliación contra el efectivo contado.
package cash

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// Resultado de la conciliación.
const (
	OutcomeBalanced = "balanced" // cuadra
	OutcomeOver     = "over"     // sobrante
	OutcomeShort    = "short"    // faltante
)

// Summary totales derivados del libro de un turno. Los totales son magnitudes (sin signo).
type Summary struct {
	OpeningAmount    decimal.Decimal
	TotalSales       decimal.Decimal
	TotalRefunds     decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	SalesCount       int
	RefundsCount     int
	DepositsCount    int
	WithdrawalsCount int
	MovementCount    int
	// NetCashFlow = apertura + ventas + ingresos − retiros − devoluciones.
	NetCashFlow decimal.Decimal
	// ByPaymentMethod ventas menos devoluciones por método de pago ("" = sin especificar).
	ByPaymentMethod map[string]decimal.Decimal
}

// Reconciliation comparación entre lo contado y lo esperado al cierre.
type Reconciliation struct {
	Expected    decimal.Decimal
	Counted     decimal.Decimal
	Discrepancy decimal.Decimal // contado − esperado
	Outcome     string
}

// SignedAmount aplica el signo que corresponde al tipo de movimiento.
func SignedAmount(movementType string, amount decimal.Decimal) decimal.Decimal {
	switch movementType {
	case entity.CashMovementRefund, entity.CashMovementWithdrawal:
		return amount.Abs().Neg()
	default:
		return amount.Abs()
	}
}

// Summarize reduce los movimientos de un turno. La apertura se toma de openingAmount
// (el registro del turno); los movimientos opening y closing solo cuentan en MovementCount.
func Summarize(openingAmount decimal.Decimal, movements []*entity.CashMovement) Summary {
	s := Summary{
		OpeningAmount:    openingAmount,
		TotalSales:       decimal.Zero,
		TotalRefunds:     decimal.Zero,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		ByPaymentMethod:  map[string]decimal.Decimal{},
	}
	for _, m := range movements {
		if m == nil {
			continue
		}
		s.MovementCount++
		amount := m.Amount.Abs()
		switch m.Type {
		case entity.CashMovementSale:
			s.TotalSales = s.TotalSales.Add(amount)
			s.SalesCount++
			s.ByPaymentMethod[m.PaymentMethodID] = s.ByPaymentMethod[m.PaymentMethodID].Add(amount)
		case entity.CashMovementRefund:
			s.TotalRefunds = s.TotalRefunds.Add(amount)
			s.RefundsCount++
			s.ByPaymentMethod[m.PaymentMethodID] = s.ByPaymentMethod[m.PaymentMethodID].Sub(amount)
		case entity.CashMovementDeposit:
			s.TotalDeposits = s.TotalDeposits.Add(amount)
			s.DepositsCount++
		case entity.CashMovementWithdrawal:
			s.TotalWithdrawals = s.TotalWithdrawals.Add(amount)
			s.WithdrawalsCount++
		}
	}
	s.NetCashFlow = openingAmount.
		Add(s.TotalSales).
		Add(s.TotalDeposits).
		Sub(s.TotalWithdrawals).
		Sub(s.TotalRefunds)
	return s
}

// Reconcile compara el efectivo contado contra el flujo neto esperado.
// Una diferencia distinta de cero se reporta pero nunca impide cerrar.
func Reconcile(s Summary, counted decimal.Decimal) Reconciliation {
	diff := counted.Sub(s.NetCashFlow)
	outcome := OutcomeBalanced
	switch diff.Sign() {
	case 1:
		outcome = OutcomeOver
	case -1:
		outcome = OutcomeShort
	}
	return Reconciliation{
		Expected:    s.NetCashFlow,
		Counted:     counted,
		Discrepancy: diff,
		Outcome:     outcome,
	}
}
