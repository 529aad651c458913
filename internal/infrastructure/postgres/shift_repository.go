package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación de ShiftRepository sobre PostgreSQL (usable con pool o tx).
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador de turnos. Pasar pool o tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

const shiftColumns = `
	id, cash_register_id, opened_by, opening_amount, opening_notes, opened_at,
	closed_by, closing_amount, closing_notes, closed_at, expected_amount, discrepancy,
	sales_count, total_sales, total_refunds, total_deposits, total_withdrawals, report_notes, report_version`

// Create inserta un turno abierto. El índice shifts_one_open_per_register rechaza un segundo turno abierto.
func (r *ShiftRepo) Create(ctx context.Context, s *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, cash_register_id, opened_by, opening_amount, opening_notes, opened_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CashRegisterID, s.OpenedBy, s.OpeningAmount, s.OpeningNotes, s.OpenedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la caja %s ya tiene un turno abierto (%s)",
				domain.ErrConflict, s.CashRegisterID, constraintName(err))
		}
		return storeErr("insert shift", err)
	}
	return nil
}

// GetByID obtiene un turno por ID.
func (r *ShiftRepo) GetByID(ctx context.Context, id string) (*entity.Shift, error) {
	return r.getOne(ctx, "get shift", `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id)
}

// GetForUpdate bloquea el turno en modo exclusivo (cierre, bajas del libro, anotaciones).
func (r *ShiftRepo) GetForUpdate(ctx context.Context, id string) (*entity.Shift, error) {
	return r.getOne(ctx, "get shift for update", `SELECT `+shiftColumns+` FROM shifts WHERE id = $1 FOR UPDATE`, id)
}

// GetForShare bloquea el turno en modo compartido: las altas concurrentes no se bloquean entre sí
// pero sí esperan a un cierre en curso.
func (r *ShiftRepo) GetForShare(ctx context.Context, id string) (*entity.Shift, error) {
	return r.getOne(ctx, "get shift for share", `SELECT `+shiftColumns+` FROM shifts WHERE id = $1 FOR SHARE`, id)
}

// GetOpenByRegister turno abierto de la caja.
func (r *ShiftRepo) GetOpenByRegister(ctx context.Context, registerID string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE cash_register_id = $1 AND closed_at IS NULL`
	return r.getOne(ctx, "get open shift by register", query, registerID)
}

// GetOpenByUser turno abierto más reciente del usuario.
func (r *ShiftRepo) GetOpenByUser(ctx context.Context, userID string) (*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + ` FROM shifts
		WHERE opened_by = $1 AND closed_at IS NULL
		ORDER BY opened_at DESC LIMIT 1`
	return r.getOne(ctx, "get open shift by user", query, userID)
}

// ListByRegister historial de turnos de la caja, más reciente primero.
func (r *ShiftRepo) ListByRegister(ctx context.Context, registerID string, limit, offset int) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + ` FROM shifts
		WHERE cash_register_id = $1
		ORDER BY opened_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, registerID, limit, offset)
	if err != nil {
		return nil, storeErr("list shifts", err)
	}
	defer rows.Close()
	list := []*entity.Shift{}
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, storeErr("scan shift", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list shifts", err)
	}
	return list, nil
}

// Close estampa cierre y resumen solo si el turno sigue abierto.
func (r *ShiftRepo) Close(ctx context.Context, s *entity.Shift) error {
	query := `
		UPDATE shifts SET
			closed_by = $2, closing_amount = $3, closing_notes = $4, closed_at = $5,
			expected_amount = $6, discrepancy = $7, sales_count = $8,
			total_sales = $9, total_refunds = $10, total_deposits = $11, total_withdrawals = $12
		WHERE id = $1 AND closed_at IS NULL`
	cmd, err := r.q.Exec(ctx, query,
		s.ID, s.ClosedBy, s.ClosingAmount, s.ClosingNotes, s.ClosedAt,
		s.ExpectedAmount, s.Discrepancy, s.SalesCount,
		s.TotalSales, s.TotalRefunds, s.TotalDeposits, s.TotalWithdrawals,
	)
	if err != nil {
		return storeErr("close shift", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: el turno %s ya está cerrado", domain.ErrConflict, s.ID)
	}
	return nil
}

// UpdateReportNotes guarda las notas de reporte e incrementa report_version.
func (r *ShiftRepo) UpdateReportNotes(ctx context.Context, id, notes string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE shifts SET report_notes = $2, report_version = report_version + 1 WHERE id = $1`, id, notes)
	if err != nil {
		return storeErr("update shift report notes", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: turno %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *ShiftRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Shift, error) {
	s, err := scanShift(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(op, err)
	}
	return s, nil
}

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var (
		s        entity.Shift
		closedBy *string
	)
	if err := row.Scan(
		&s.ID, &s.CashRegisterID, &s.OpenedBy, &s.OpeningAmount, &s.OpeningNotes, &s.OpenedAt,
		&closedBy, &s.ClosingAmount, &s.ClosingNotes, &s.ClosedAt, &s.ExpectedAmount, &s.Discrepancy,
		&s.SalesCount, &s.TotalSales, &s.TotalRefunds, &s.TotalDeposits, &s.TotalWithdrawals, &s.ReportNotes,
		&s.ReportVersion,
	); err != nil {
		return nil, err
	}
	s.ClosedBy = derefString(closedBy)
	if s.ClosedAt != nil {
		t := s.ClosedAt.UTC()
		s.ClosedAt = &t
	}
	s.OpenedAt = s.OpenedAt.UTC()
	return &s, nil
}
