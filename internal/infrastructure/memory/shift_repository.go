package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// ShiftRepository implementación en memoria de repository.ShiftRepository.
type ShiftRepository struct {
	store *Store
	tx    *state
}

func (r *ShiftRepository) Create(_ context.Context, shift *entity.Shift) error {
	return r.store.write(r.tx, func(s *state) error {
		if _, ok := s.shifts[shift.ID]; ok {
			return fmt.Errorf("%w: turno %s ya existe", domain.ErrConflict, shift.ID)
		}
		if openShift(s, func(sh entity.Shift) bool { return sh.CashRegisterID == shift.CashRegisterID }) != nil {
			return fmt.Errorf("%w: la caja %s ya tiene un turno abierto", domain.ErrConflict, shift.CashRegisterID)
		}
		s.shifts[shift.ID] = cloneShift(*shift)
		return nil
	})
}

func (r *ShiftRepository) GetByID(_ context.Context, id string) (*entity.Shift, error) {
	var out *entity.Shift
	r.store.read(r.tx, func(s *state) {
		if sh, ok := s.shifts[id]; ok {
			c := cloneShift(sh)
			out = &c
		}
	})
	return out, nil
}

func (r *ShiftRepository) GetForUpdate(ctx context.Context, id string) (*entity.Shift, error) {
	return r.GetByID(ctx, id)
}

func (r *ShiftRepository) GetForShare(ctx context.Context, id string) (*entity.Shift, error) {
	return r.GetByID(ctx, id)
}

func (r *ShiftRepository) GetOpenByRegister(_ context.Context, registerID string) (*entity.Shift, error) {
	var out *entity.Shift
	r.store.read(r.tx, func(s *state) {
		out = openShift(s, func(sh entity.Shift) bool { return sh.CashRegisterID == registerID })
	})
	return out, nil
}

func (r *ShiftRepository) GetOpenByUser(_ context.Context, userID string) (*entity.Shift, error) {
	var out *entity.Shift
	r.store.read(r.tx, func(s *state) {
		out = openShift(s, func(sh entity.Shift) bool { return sh.OpenedBy == userID })
	})
	return out, nil
}

func (r *ShiftRepository) ListByRegister(_ context.Context, registerID string, limit, offset int) ([]*entity.Shift, error) {
	var list []*entity.Shift
	r.store.read(r.tx, func(s *state) {
		for _, sh := range s.shifts {
			if sh.CashRegisterID == registerID {
				c := cloneShift(sh)
				list = append(list, &c)
			}
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].OpenedAt.After(list[j].OpenedAt) })
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []*entity.Shift{}, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *ShiftRepository) Close(_ context.Context, shift *entity.Shift) error {
	return r.store.write(r.tx, func(s *state) error {
		cur, ok := s.shifts[shift.ID]
		if !ok {
			return fmt.Errorf("%w: turno %s", domain.ErrNotFound, shift.ID)
		}
		if !cur.IsOpen() {
			return fmt.Errorf("%w: el turno %s ya está cerrado", domain.ErrConflict, shift.ID)
		}
		s.shifts[shift.ID] = cloneShift(*shift)
		return nil
	})
}

func (r *ShiftRepository) UpdateReportNotes(_ context.Context, id, notes string) error {
	return r.store.write(r.tx, func(s *state) error {
		cur, ok := s.shifts[id]
		if !ok {
			return fmt.Errorf("%w: turno %s", domain.ErrNotFound, id)
		}
		cur.ReportNotes = notes
		cur.ReportVersion++
		s.shifts[id] = cur
		return nil
	})
}

func openShift(s *state, match func(entity.Shift) bool) *entity.Shift {
	for _, sh := range s.shifts {
		if sh.IsOpen() && match(sh) {
			c := cloneShift(sh)
			return &c
		}
	}
	return nil
}

// cloneShift copia los campos puntero para que el llamador no altere el estado guardado.
func cloneShift(sh entity.Shift) entity.Shift {
	if sh.ClosingAmount != nil {
		v := *sh.ClosingAmount
		sh.ClosingAmount = &v
	}
	if sh.ClosedAt != nil {
		v := *sh.ClosedAt
		sh.ClosedAt = &v
	}
	if sh.ExpectedAmount != nil {
		v := *sh.ExpectedAmount
		sh.ExpectedAmount = &v
	}
	if sh.Discrepancy != nil {
		v := *sh.Discrepancy
		sh.Discrepancy = &v
	}
	return sh
}
