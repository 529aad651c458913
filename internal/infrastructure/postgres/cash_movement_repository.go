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

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

// CashMovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type CashMovementRepo struct {
	q Querier
}

// NewCashMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewCashMovementRepository(q Querier) *CashMovementRepo {
	return &CashMovementRepo{q: q}
}

const movementColumns = `
	id, shift_id, user_id, movement_type, amount, payment_method_id, sale_id,
	description, metadata, created_at`

// Create agrega un movimiento al libro.
func (r *CashMovementRepo) Create(ctx context.Context, m *entity.CashMovement) error {
	meta := m.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	query := `
		INSERT INTO cash_movements (id, shift_id, user_id, movement_type, amount,
			payment_method_id, sale_id, description, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ShiftID, m.UserID, m.Type, m.Amount,
		nullString(m.PaymentMethodID), nullString(m.SaleID), m.Description, meta, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: movimiento %s ya existe", domain.ErrConflict, m.ID)
		}
		return storeErr("insert cash movement", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *CashMovementRepo) GetByID(ctx context.Context, id string) (*entity.CashMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM cash_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get cash movement", err)
	}
	return m, nil
}

// ListByShift libro del turno, más antiguo primero; seq desempata movimientos del mismo instante.
func (r *CashMovementRepo) ListByShift(ctx context.Context, shiftID string) ([]*entity.CashMovement, error) {
	query := `
		SELECT ` + movementColumns + ` FROM cash_movements
		WHERE shift_id = $1
		ORDER BY created_at, seq`
	rows, err := r.q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, storeErr("list cash movements", err)
	}
	defer rows.Close()
	list := []*entity.CashMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, storeErr("scan cash movement", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list cash movements", err)
	}
	return list, nil
}

// Delete elimina un movimiento. La política de qué se puede borrar vive en el caso de uso.
func (r *CashMovementRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cash_movements WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete cash movement", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.CashMovement, error) {
	var (
		m             entity.CashMovement
		paymentMethod *string
		saleID        *string
	)
	if err := row.Scan(
		&m.ID, &m.ShiftID, &m.UserID, &m.Type, &m.Amount, &paymentMethod, &saleID,
		&m.Description, &m.Metadata, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	m.PaymentMethodID = derefString(paymentMethod)
	m.SaleID = derefString(saleID)
	m.CreatedAt = m.CreatedAt.UTC()
	if m.Metadata == nil {
		m.Metadata = map[string]any{}
	}
	return &m, nil
}
