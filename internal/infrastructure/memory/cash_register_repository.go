package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// CashRegisterRepository implementación en memoria de repository.CashRegisterRepository.
type CashRegisterRepository struct {
	store *Store
	tx    *state
}

func (r *CashRegisterRepository) Create(_ context.Context, reg *entity.CashRegister) error {
	return r.store.write(r.tx, func(s *state) error {
		if _, ok := s.registers[reg.ID]; ok {
			return fmt.Errorf("%w: caja %s ya existe", domain.ErrConflict, reg.ID)
		}
		if reg.IsMain {
			if err := checkMain(s, reg); err != nil {
				return err
			}
		}
		s.registers[reg.ID] = *reg
		return nil
	})
}

func (r *CashRegisterRepository) GetByID(_ context.Context, id string) (*entity.CashRegister, error) {
	var out *entity.CashRegister
	r.store.read(r.tx, func(s *state) {
		if reg, ok := s.registers[id]; ok {
			out = &reg
		}
	})
	return out, nil
}

// GetForUpdate en memoria la transacción ya tiene el candado exclusivo.
func (r *CashRegisterRepository) GetForUpdate(ctx context.Context, id string) (*entity.CashRegister, error) {
	return r.GetByID(ctx, id)
}

func (r *CashRegisterRepository) ListByLocation(_ context.Context, locationID string, includeInactive bool) ([]*entity.CashRegister, error) {
	var list []*entity.CashRegister
	r.store.read(r.tx, func(s *state) {
		for _, reg := range s.registers {
			if reg.LocationID != locationID || (!includeInactive && !reg.IsActive) {
				continue
			}
			list = append(list, &reg)
		}
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].IsMain != list[j].IsMain {
			return list[i].IsMain
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *CashRegisterRepository) Update(_ context.Context, reg *entity.CashRegister) error {
	return r.store.write(r.tx, func(s *state) error {
		if _, ok := s.registers[reg.ID]; !ok {
			return fmt.Errorf("%w: caja %s", domain.ErrNotFound, reg.ID)
		}
		if reg.IsMain {
			if err := checkMain(s, reg); err != nil {
				return err
			}
		}
		s.registers[reg.ID] = *reg
		return nil
	})
}

func (r *CashRegisterRepository) ClearMain(_ context.Context, locationID, exceptID string) error {
	return r.store.write(r.tx, func(s *state) error {
		for id, reg := range s.registers {
			if reg.LocationID == locationID && reg.IsMain && id != exceptID {
				reg.IsMain = false
				s.registers[id] = reg
			}
		}
		return nil
	})
}

// checkMain equivale al índice único parcial de caja principal por sucursal.
func checkMain(s *state, reg *entity.CashRegister) error {
	for id, other := range s.registers {
		if id != reg.ID && other.LocationID == reg.LocationID && other.IsMain {
			return fmt.Errorf("%w: la sucursal ya tiene caja principal", domain.ErrConflict)
		}
	}
	return nil
}
