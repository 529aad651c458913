package cash_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Caja-api/internal/domain/cash"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mov(typ, amount, method string) *entity.CashMovement {
	return &entity.CashMovement{
		Type:            typ,
		Amount:          cash.SignedAmount(typ, d(amount)),
		PaymentMethodID: method,
		CreatedAt:       time.Now(),
	}
}

// Apertura 200, retiro 100, ingreso 40 → flujo neto 140.
func TestSummarize_RetiroEIngreso(t *testing.T) {
	movs := []*entity.CashMovement{
		mov(entity.CashMovementOpening, "200", ""),
		mov(entity.CashMovementWithdrawal, "100", ""),
		mov(entity.CashMovementDeposit, "40", ""),
	}
	s := cash.Summarize(d("200"), movs)

	assert.True(t, s.NetCashFlow.Equal(d("140")), "got %s", s.NetCashFlow)
	assert.True(t, s.TotalWithdrawals.Equal(d("100")))
	assert.True(t, s.TotalDeposits.Equal(d("40")))
	assert.Equal(t, 3, s.MovementCount)
	assert.Equal(t, 1, s.WithdrawalsCount)
	assert.Equal(t, 1, s.DepositsCount)
}

func TestSummarize_VentasYDevoluciones(t *testing.T) {
	movs := []*entity.CashMovement{
		mov(entity.CashMovementOpening, "500", ""),
		mov(entity.CashMovementSale, "120.50", "efectivo"),
		mov(entity.CashMovementSale, "79.50", "efectivo"),
		mov(entity.CashMovementSale, "300", "tarjeta"),
		mov(entity.CashMovementRefund, "20", "efectivo"),
	}
	s := cash.Summarize(d("500"), movs)

	// 500 + 500 − 20
	assert.True(t, s.NetCashFlow.Equal(d("980")), "got %s", s.NetCashFlow)
	assert.True(t, s.TotalSales.Equal(d("500")))
	assert.True(t, s.TotalRefunds.Equal(d("20")))
	assert.Equal(t, 3, s.SalesCount)
	assert.Equal(t, 1, s.RefundsCount)
	assert.True(t, s.ByPaymentMethod["efectivo"].Equal(d("180")))
	assert.True(t, s.ByPaymentMethod["tarjeta"].Equal(d("300")))
}

// El movimiento de cierre no altera los totales.
func TestSummarize_IgnoraCierre(t *testing.T) {
	movs := []*entity.CashMovement{
		mov(entity.CashMovementOpening, "100", ""),
		mov(entity.CashMovementSale, "50", ""),
		mov(entity.CashMovementClosing, "999", ""),
	}
	s := cash.Summarize(d("100"), movs)
	assert.True(t, s.NetCashFlow.Equal(d("150")))
	assert.Equal(t, 3, s.MovementCount)
}

func TestSummarize_SinMovimientos(t *testing.T) {
	s := cash.Summarize(d("0"), nil)
	assert.True(t, s.NetCashFlow.IsZero())
	assert.Equal(t, 0, s.MovementCount)
	assert.NotNil(t, s.ByPaymentMethod)
}

// Muchos centavos sumados no acumulan error de redondeo.
func TestSummarize_SinDerivaDecimal(t *testing.T) {
	var movs []*entity.CashMovement
	for i := 0; i < 1000; i++ {
		movs = append(movs, mov(entity.CashMovementSale, "0.01", ""))
	}
	s := cash.Summarize(d("0.10"), movs)
	assert.True(t, s.NetCashFlow.Equal(d("10.10")), "got %s", s.NetCashFlow)
}

func TestReconcile(t *testing.T) {
	s := cash.Summarize(d("200"), []*entity.CashMovement{mov(entity.CashMovementSale, "100", "")})

	tests := []struct {
		name    string
		counted string
		diff    string
		outcome string
	}{
		{"cuadra", "300", "0", cash.OutcomeBalanced},
		{"sobrante", "350", "50", cash.OutcomeOver},
		{"faltante", "290.25", "-9.75", cash.OutcomeShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := cash.Reconcile(s, d(tt.counted))
			assert.True(t, r.Expected.Equal(d("300")))
			assert.True(t, r.Discrepancy.Equal(d(tt.diff)), "got %s", r.Discrepancy)
			assert.Equal(t, tt.outcome, r.Outcome)
		})
	}
}

func TestSignedAmount(t *testing.T) {
	assert.True(t, cash.SignedAmount(entity.CashMovementWithdrawal, d("100")).Equal(d("-100")))
	assert.True(t, cash.SignedAmount(entity.CashMovementRefund, d("-5")).Equal(d("-5")))
	assert.True(t, cash.SignedAmount(entity.CashMovementDeposit, d("40")).Equal(d("40")))
	assert.True(t, cash.SignedAmount(entity.CashMovementSale, d("-7")).Equal(d("7")))
}
