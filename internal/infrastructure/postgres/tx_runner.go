package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Caja-api/internal/application/register"
	"github.com/jhoicas/Caja-api/internal/application/shift"
	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

var _ shift.TxRunner = (*TxRunner)(nil)
var _ register.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCash inicia una transacción con los repos de caja, turnos y libro, y hace Commit o Rollback.
func (r *TxRunner) RunCash(ctx context.Context, fn func(
	registerRepo repository.CashRegisterRepository,
	shiftRepo repository.ShiftRepository,
	movRepo repository.CashMovementRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCashRegisterRepository(tx), NewShiftRepository(tx), NewCashMovementRepository(tx))
	})
}

// RunRegisters inicia una transacción con los repos de cajas y turnos (alta, caja principal, desactivación).
func (r *TxRunner) RunRegisters(ctx context.Context, fn func(
	registerRepo repository.CashRegisterRepository,
	shiftRepo repository.ShiftRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCashRegisterRepository(tx), NewShiftRepository(tx))
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewStoreError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.NewStoreError("commit transaction", err)
	}
	return nil
}
