// Package memory implementa los puertos de repositorio en memoria para desarrollo local
// (DB_DRIVER=memory) y pruebas. Las transacciones trabajan sobre una copia del estado
// bajo un candado exclusivo: commit reemplaza el estado, un error lo descarta.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

type state struct {
	registers map[string]entity.CashRegister
	shifts    map[string]entity.Shift
	movements []entity.CashMovement // orden de inserción
}

func newState() *state {
	return &state{
		registers: map[string]entity.CashRegister{},
		shifts:    map[string]entity.Shift{},
	}
}

func (s *state) clone() *state {
	return &state{
		registers: maps.Clone(s.registers),
		shifts:    maps.Clone(s.shifts),
		movements: slices.Clone(s.movements),
	}
}

// Store estado compartido de los repositorios en memoria.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

// Registers repositorio de cajas fuera de transacción.
func (s *Store) Registers() repository.CashRegisterRepository {
	return &CashRegisterRepository{store: s}
}

// Shifts repositorio de turnos fuera de transacción.
func (s *Store) Shifts() repository.ShiftRepository { return &ShiftRepository{store: s} }

// Movements repositorio del libro fuera de transacción.
func (s *Store) Movements() repository.CashMovementRepository {
	return &CashMovementRepository{store: s}
}

// Analytics consultas del tablero de caja.
func (s *Store) Analytics() repository.CashAnalyticsRepository { return &AnalyticsRepository{store: s} }

// read ejecuta fn sobre el estado visible: el de la transacción si hay, si no el confirmado.
func (s *Store) read(tx *state, fn func(*state)) {
	if tx != nil {
		fn(tx)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

func (s *Store) write(tx *state, fn func(*state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.data.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *Store) begin(ctx context.Context, fn func(tx *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := s.data.clone()
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = tx
	return nil
}

// TxRunner ejecuta transacciones sobre el Store (mismo contrato que postgres.TxRunner).
type TxRunner struct {
	store *Store
}

// NewTxRunner crea el TxRunner en memoria.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunCash ejecuta fn con los repositorios de caja, turnos y libro atados a la transacción.
func (r *TxRunner) RunCash(ctx context.Context, fn func(
	registerRepo repository.CashRegisterRepository,
	shiftRepo repository.ShiftRepository,
	movRepo repository.CashMovementRepository,
) error) error {
	return r.store.begin(ctx, func(tx *state) error {
		return fn(
			&CashRegisterRepository{store: r.store, tx: tx},
			&ShiftRepository{store: r.store, tx: tx},
			&CashMovementRepository{store: r.store, tx: tx},
		)
	})
}

// RunRegisters ejecuta fn con los repositorios de cajas y turnos atados a la transacción.
func (r *TxRunner) RunRegisters(ctx context.Context, fn func(
	registerRepo repository.CashRegisterRepository,
	shiftRepo repository.ShiftRepository,
) error) error {
	return r.store.begin(ctx, func(tx *state) error {
		return fn(
			&CashRegisterRepository{store: r.store, tx: tx},
			&ShiftRepository{store: r.store, tx: tx},
		)
	})
}
