package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

// AnalyticsRepository implementación en memoria de repository.CashAnalyticsRepository.
type AnalyticsRepository struct {
	store *Store
}

func (r *AnalyticsRepository) GetClosedShiftTotals(_ context.Context, locationID string, from, to time.Time) (repository.ShiftTotals, error) {
	t := repository.ShiftTotals{
		TotalSales:       decimal.Zero,
		TotalRefunds:     decimal.Zero,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		NetDiscrepancy:   decimal.Zero,
	}
	r.store.read(nil, func(s *state) {
		for _, sh := range s.shifts {
			if sh.IsOpen() || s.registers[sh.CashRegisterID].LocationID != locationID {
				continue
			}
			if sh.ClosedAt.Before(from) || !sh.ClosedAt.Before(to) {
				continue
			}
			t.ClosedShifts++
			t.TotalSales = t.TotalSales.Add(sh.TotalSales)
			t.TotalRefunds = t.TotalRefunds.Add(sh.TotalRefunds)
			t.TotalDeposits = t.TotalDeposits.Add(sh.TotalDeposits)
			t.TotalWithdrawals = t.TotalWithdrawals.Add(sh.TotalWithdrawals)
			if sh.Discrepancy == nil {
				continue
			}
			t.NetDiscrepancy = t.NetDiscrepancy.Add(*sh.Discrepancy)
			switch sh.Discrepancy.Sign() {
			case -1:
				t.ShortCount++
			case 1:
				t.OverCount++
			}
		}
	})
	return t, nil
}

func (r *AnalyticsRepository) CountOpenShifts(_ context.Context, locationID string) (int, error) {
	n := 0
	r.store.read(nil, func(s *state) {
		for _, sh := range s.shifts {
			if sh.IsOpen() && s.registers[sh.CashRegisterID].LocationID == locationID {
				n++
			}
		}
	})
	return n, nil
}
