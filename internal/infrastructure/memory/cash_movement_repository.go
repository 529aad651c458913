package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// CashMovementRepository implementación en memoria de repository.CashMovementRepository.
type CashMovementRepository struct {
	store *Store
	tx    *state
}

func (r *CashMovementRepository) Create(_ context.Context, m *entity.CashMovement) error {
	return r.store.write(r.tx, func(s *state) error {
		if _, ok := s.shifts[m.ShiftID]; !ok {
			return fmt.Errorf("%w: turno %s", domain.ErrNotFound, m.ShiftID)
		}
		if slices.ContainsFunc(s.movements, func(x entity.CashMovement) bool { return x.ID == m.ID }) {
			return fmt.Errorf("%w: movimiento %s ya existe", domain.ErrConflict, m.ID)
		}
		c := *m
		c.Metadata = maps.Clone(m.Metadata)
		s.movements = append(s.movements, c)
		return nil
	})
}

func (r *CashMovementRepository) GetByID(_ context.Context, id string) (*entity.CashMovement, error) {
	var out *entity.CashMovement
	r.store.read(r.tx, func(s *state) {
		for _, m := range s.movements {
			if m.ID == id {
				c := m
				c.Metadata = maps.Clone(m.Metadata)
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *CashMovementRepository) ListByShift(_ context.Context, shiftID string) ([]*entity.CashMovement, error) {
	list := []*entity.CashMovement{}
	r.store.read(r.tx, func(s *state) {
		for _, m := range s.movements {
			if m.ShiftID == shiftID {
				c := m
				c.Metadata = maps.Clone(m.Metadata)
				list = append(list, &c)
			}
		}
	})
	return list, nil
}

func (r *CashMovementRepository) Delete(_ context.Context, id string) error {
	return r.store.write(r.tx, func(s *state) error {
		i := slices.IndexFunc(s.movements, func(x entity.CashMovement) bool { return x.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
		}
		s.movements = slices.Delete(s.movements, i, i+1)
		return nil
	})
}
