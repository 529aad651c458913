//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/application/register"
	"github.com/jhoicas/Caja-api/internal/application/shift"
	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Caja-api/pkg/config"
	"github.com/jhoicas/Caja-api/pkg/money"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("prueba con contenedor omitida en modo short")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "caja",
				"POSTGRES_PASSWORD": "caja",
				"POSTGRES_DB":       "caja",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminar contenedor: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	port, err := strconv.Atoi(mapped.Port())
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		Host: host, Port: port, User: "caja", Password: "caja", DBName: "caja", SSLMode: "disable",
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = postgres.Migrate(ctx, pool, zerolog.Nop())
	require.NoError(t, err)
	return pool
}

func newUseCases(pool *pgxpool.Pool) (*register.UseCase, *shift.UseCase) {
	runner := postgres.NewTxRunner(pool)
	registers := postgres.NewCashRegisterRepository(pool)
	regUC := register.NewUseCase(runner, registers, zerolog.Nop())
	shiftUC := shift.NewUseCase(runner, registers,
		postgres.NewShiftRepository(pool), postgres.NewCashMovementRepository(pool),
		nil, shift.Config{Currency: money.MustNew("MXN")}, zerolog.Nop())
	return regUC, shiftUC
}

func TestPostgres_CicloCompletoDeTurno(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	regUC, uc := newUseCases(pool)

	applied, err := postgres.Migrate(ctx, pool, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, applied, "las migraciones son idempotentes")

	reg, err := regUC.Create(ctx, dto.CreateCashRegisterRequest{LocationID: "suc-1", Name: "Caja 1", IsMain: true})
	require.NoError(t, err)

	s, err := uc.OpenShift(ctx, shift.OpenShiftInput{RegisterID: reg.ID, UserID: "u1", OpeningAmount: decimal.RequireFromString("200")})
	require.NoError(t, err)

	_, err = uc.OpenShift(ctx, shift.OpenShiftInput{RegisterID: reg.ID, UserID: "u2", OpeningAmount: decimal.Zero})
	require.ErrorIs(t, err, domain.ErrConflict)

	for _, in := range []shift.RecordMovementInput{
		{ShiftID: s.ID, UserID: "u1", Type: entity.CashMovementWithdrawal, Amount: decimal.RequireFromString("100")},
		{ShiftID: s.ID, UserID: "u1", Type: entity.CashMovementDeposit, Amount: decimal.RequireFromString("40"),
			Metadata: map[string]any{"motivo": "cambio"}},
		{ShiftID: s.ID, UserID: "u1", Type: entity.CashMovementSale, Amount: decimal.RequireFromString("15.25"),
			SaleID: "venta-1", PaymentMethodID: "efectivo"},
	} {
		_, err := uc.RecordMovement(ctx, in)
		require.NoError(t, err)
	}

	movs, err := uc.ListMovements(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, movs.Items, 4)
	assert.Equal(t, entity.CashMovementOpening, movs.Items[0].Type)
	assert.Equal(t, "cambio", movs.Items[2].Metadata["motivo"])
	assert.Equal(t, "venta-1", movs.Items[3].SaleID)

	closed, err := uc.CloseShift(ctx, shift.CloseShiftInput{ShiftID: s.ID, UserID: "u1", CountedAmount: decimal.RequireFromString("205.25")})
	require.NoError(t, err)
	assert.True(t, closed.ExpectedAmount.Equal(decimal.RequireFromString("155.25")), "got %s", closed.ExpectedAmount)
	assert.True(t, closed.Discrepancy.Equal(decimal.RequireFromString("50")))

	_, err = uc.RecordMovement(ctx, shift.RecordMovementInput{ShiftID: s.ID, UserID: "u1", Type: entity.CashMovementSale, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := uc.GetShift(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusClosed, got.Status)
	require.NotNil(t, got.ClosingAmount)
	assert.True(t, got.ClosingAmount.Equal(decimal.RequireFromString("205.25")))

	annotated, err := uc.AnnotateShift(ctx, s.ID, "faltó firmar")
	require.NoError(t, err)
	assert.Equal(t, "faltó firmar", annotated.ReportNotes)
	row, err := postgres.NewShiftRepository(pool).GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 1, row.ReportVersion)
	rep, err := uc.BuildReport(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "faltó firmar", rep.Shift.ReportNotes)

	analytics := postgres.NewAnalyticsRepository(pool)
	now := time.Now()
	totals, err := analytics.GetClosedShiftTotals(ctx, "suc-1", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, totals.ClosedShifts)
	assert.True(t, totals.TotalSales.Equal(decimal.RequireFromString("15.25")), "got %s", totals.TotalSales)
	assert.True(t, totals.NetDiscrepancy.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 1, totals.OverCount)
	open, err := analytics.CountOpenShifts(ctx, "suc-1")
	require.NoError(t, err)
	assert.Zero(t, open)

	_, err = regUC.Deactivate(ctx, reg.ID)
	require.NoError(t, err)
}

// Orden por created_at y luego seq; dos lecturas seguidas devuelven lo mismo.
func TestPostgres_ListMovements_OrdenEIdempotencia(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	regUC, uc := newUseCases(pool)

	reg, err := regUC.Create(ctx, dto.CreateCashRegisterRequest{LocationID: "suc-1", Name: "Caja 1"})
	require.NoError(t, err)
	s, err := uc.OpenShift(ctx, shift.OpenShiftInput{RegisterID: reg.ID, UserID: "u1", OpeningAmount: decimal.NewFromInt(100)})
	require.NoError(t, err)

	types := []string{
		entity.CashMovementSale, entity.CashMovementDeposit, entity.CashMovementWithdrawal,
		entity.CashMovementRefund, entity.CashMovementSale, entity.CashMovementDeposit,
	}
	recorded := []string{}
	for i, typ := range types {
		m, err := uc.RecordMovement(ctx, shift.RecordMovementInput{
			ShiftID: s.ID, UserID: "u1", Type: typ, Amount: decimal.NewFromInt(int64(i + 1)),
		})
		require.NoError(t, err)
		recorded = append(recorded, m.ID)
	}

	movs, err := uc.ListMovements(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, movs.Items, len(types)+1)
	assert.Equal(t, entity.CashMovementOpening, movs.Items[0].Type)
	for i := 1; i < len(movs.Items); i++ {
		assert.False(t, movs.Items[i].CreatedAt.Before(movs.Items[i-1].CreatedAt),
			"movimiento %d antes que el %d", i, i-1)
		assert.Equal(t, recorded[i-1], movs.Items[i].ID)
	}

	again, err := uc.ListMovements(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, movs, again)
}

func TestPostgres_AperturasConcurrentes(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	regUC, uc := newUseCases(pool)

	reg, err := regUC.Create(ctx, dto.CreateCashRegisterRequest{LocationID: "suc-1", Name: "Caja 1"})
	require.NoError(t, err)

	const n = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.OpenShift(ctx, shift.OpenShiftInput{RegisterID: reg.ID, UserID: "u1", OpeningAmount: decimal.NewFromInt(10)})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, domain.ErrConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	_, err = regUC.Deactivate(ctx, reg.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
