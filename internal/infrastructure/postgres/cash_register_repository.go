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

var _ repository.CashRegisterRepository = (*CashRegisterRepo)(nil)

// CashRegisterRepo implementación de CashRegisterRepository sobre PostgreSQL (usable con pool o tx).
type CashRegisterRepo struct {
	q Querier
}

// NewCashRegisterRepository construye el adaptador de cajas. Pasar pool o tx (Querier).
func NewCashRegisterRepository(q Querier) *CashRegisterRepo {
	return &CashRegisterRepo{q: q}
}

const registerColumns = `id, location_id, name, is_active, is_main, created_at, updated_at`

// Create persiste una nueva caja.
func (r *CashRegisterRepo) Create(ctx context.Context, reg *entity.CashRegister) error {
	query := `
		INSERT INTO cash_registers (` + registerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		reg.ID, reg.LocationID, reg.Name, reg.IsActive, reg.IsMain, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la sucursal ya tiene caja principal", domain.ErrConflict)
		}
		return storeErr("insert cash register", err)
	}
	return nil
}

// GetByID obtiene una caja por ID.
func (r *CashRegisterRepo) GetByID(ctx context.Context, id string) (*entity.CashRegister, error) {
	return r.get(ctx, `SELECT `+registerColumns+` FROM cash_registers WHERE id = $1`, id)
}

// GetForUpdate obtiene la caja y bloquea la fila (SELECT FOR UPDATE).
func (r *CashRegisterRepo) GetForUpdate(ctx context.Context, id string) (*entity.CashRegister, error) {
	return r.get(ctx, `SELECT `+registerColumns+` FROM cash_registers WHERE id = $1 FOR UPDATE`, id)
}

func (r *CashRegisterRepo) get(ctx context.Context, query, id string) (*entity.CashRegister, error) {
	reg, err := scanRegister(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get cash register", err)
	}
	return reg, nil
}

// ListByLocation lista las cajas de una sucursal, la principal primero.
func (r *CashRegisterRepo) ListByLocation(ctx context.Context, locationID string, includeInactive bool) ([]*entity.CashRegister, error) {
	query := `
		SELECT ` + registerColumns + `
		FROM cash_registers
		WHERE location_id = $1 AND (is_active OR $2)
		ORDER BY is_main DESC, name`
	rows, err := r.q.Query(ctx, query, locationID, includeInactive)
	if err != nil {
		return nil, storeErr("list cash registers", err)
	}
	defer rows.Close()
	var list []*entity.CashRegister
	for rows.Next() {
		reg, err := scanRegister(rows)
		if err != nil {
			return nil, storeErr("scan cash register", err)
		}
		list = append(list, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list cash registers", err)
	}
	return list, nil
}

// Update persiste nombre, estado y marca de principal.
func (r *CashRegisterRepo) Update(ctx context.Context, reg *entity.CashRegister) error {
	query := `
		UPDATE cash_registers SET name = $2, is_active = $3, is_main = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, reg.ID, reg.Name, reg.IsActive, reg.IsMain, reg.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la sucursal ya tiene caja principal", domain.ErrConflict)
		}
		return storeErr("update cash register", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: caja %s", domain.ErrNotFound, reg.ID)
	}
	return nil
}

// ClearMain quita la marca de principal en la sucursal, excepto exceptID.
func (r *CashRegisterRepo) ClearMain(ctx context.Context, locationID, exceptID string) error {
	query := `
		UPDATE cash_registers SET is_main = FALSE, updated_at = now()
		WHERE location_id = $1 AND is_main AND id <> $2`
	if _, err := r.q.Exec(ctx, query, locationID, exceptID); err != nil {
		return storeErr("clear main cash register", err)
	}
	return nil
}

func scanRegister(row pgx.Row) (*entity.CashRegister, error) {
	var reg entity.CashRegister
	if err := row.Scan(
		&reg.ID, &reg.LocationID, &reg.Name, &reg.IsActive, &reg.IsMain, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &reg, nil
}
