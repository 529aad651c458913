package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Caja-api/internal/application/analytics"
	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/application/register"
	"github.com/jhoicas/Caja-api/internal/application/shift"
	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/Caja-api/pkg/money"
)

type fixture struct {
	store     *memory.Store
	registers *register.UseCase
	shifts    *shift.UseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	return &fixture{
		store:     store,
		registers: register.NewUseCase(runner, store.Registers(), zerolog.Nop()),
		shifts: shift.NewUseCase(runner, store.Registers(), store.Shifts(), store.Movements(), nil,
			shift.Config{Currency: money.MustNew("MXN"), ReportTTL: time.Minute}, zerolog.Nop()),
	}
}

func (f *fixture) register(t *testing.T, location, name string) string {
	t.Helper()
	reg, err := f.registers.Create(context.Background(), dto.CreateCashRegisterRequest{LocationID: location, Name: name})
	require.NoError(t, err)
	return reg.ID
}

// cycle abre un turno, registra una venta y lo cierra con el conteo dado.
func (f *fixture) cycle(t *testing.T, registerID, opening, sale, counted string) {
	t.Helper()
	ctx := context.Background()
	sh, err := f.shifts.OpenShift(ctx, shift.OpenShiftInput{
		RegisterID: registerID, UserID: "cajero", OpeningAmount: decimal.RequireFromString(opening),
	})
	require.NoError(t, err)
	_, err = f.shifts.RecordMovement(ctx, shift.RecordMovementInput{
		ShiftID: sh.ID, UserID: "cajero", Type: "sale", Amount: decimal.RequireFromString(sale),
	})
	require.NoError(t, err)
	_, err = f.shifts.CloseShift(ctx, shift.CloseShiftInput{
		ShiftID: sh.ID, UserID: "cajero", CountedAmount: decimal.RequireFromString(counted),
	})
	require.NoError(t, err)
}

func TestGetSummary_CierresDelDia(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.register(t, "suc-1", "A")
	b := f.register(t, "suc-1", "B")
	c := f.register(t, "suc-2", "C")

	f.cycle(t, a, "100", "50", "140") // esperado 150, faltan 10
	f.cycle(t, b, "0", "20", "25")    // esperado 20, sobran 5
	f.cycle(t, c, "0", "999", "999")  // otra sucursal
	_, err := f.shifts.OpenShift(ctx, shift.OpenShiftInput{RegisterID: b, UserID: "cajero", OpeningAmount: decimal.Zero})
	require.NoError(t, err)

	uc := analytics.NewDashboardUseCase(f.store.Analytics(), money.MustNew("MXN")).
		WithClock(func() time.Time { return time.Now().UTC() })
	out, err := uc.GetSummary(ctx, "suc-1")
	require.NoError(t, err)

	assert.Equal(t, "suc-1", out.LocationID)
	assert.Equal(t, "MXN", out.Currency)
	assert.Equal(t, 1, out.OpenShifts)
	for _, totals := range []dto.ShiftTotalsResponse{out.Today, out.Month} {
		assert.Equal(t, 2, totals.ClosedShifts)
		assert.True(t, totals.TotalSales.Equal(decimal.NewFromInt(70)), totals.TotalSales.String())
		assert.True(t, totals.NetDiscrepancy.Equal(decimal.NewFromInt(-5)), totals.NetDiscrepancy.String())
		assert.Equal(t, 1, totals.ShortCount)
		assert.Equal(t, 1, totals.OverCount)
	}
}

func TestGetSummary_FueraDelPeriodo(t *testing.T) {
	f := newFixture()
	a := f.register(t, "suc-1", "A")
	f.cycle(t, a, "100", "50", "150")

	future := time.Date(2030, time.February, 10, 12, 0, 0, 0, time.UTC)
	uc := analytics.NewDashboardUseCase(f.store.Analytics(), money.MustNew("MXN")).
		WithClock(func() time.Time { return future })
	out, err := uc.GetSummary(context.Background(), "suc-1")
	require.NoError(t, err)

	assert.Equal(t, 0, out.Today.ClosedShifts)
	assert.Equal(t, 0, out.Month.ClosedShifts)
	assert.True(t, out.Month.TotalSales.IsZero())
	assert.Equal(t, "Febrero 2030", out.DateLabel)
}

func TestGetSummary_SinSucursal(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewStore().Analytics(), money.MustNew("MXN"))
	_, err := uc.GetSummary(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
