package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

var _ repository.CashAnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre turnos para el tablero de caja.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetClosedShiftTotals suma el resumen estampado al cierre de cada turno de la sucursal
// cerrado dentro de [from, to). No relee el libro: el resumen del turno ya es definitivo.
func (r *AnalyticsRepo) GetClosedShiftTotals(
	ctx context.Context,
	locationID string,
	from, to time.Time,
) (repository.ShiftTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                                         AS closed_shifts,
	    COALESCE(SUM(s.total_sales), 0)                  AS total_sales,
	    COALESCE(SUM(s.total_refunds), 0)                AS total_refunds,
	    COALESCE(SUM(s.total_deposits), 0)               AS total_deposits,
	    COALESCE(SUM(s.total_withdrawals), 0)            AS total_withdrawals,
	    COALESCE(SUM(s.discrepancy), 0)                  AS net_discrepancy,
	    COUNT(*) FILTER (WHERE s.discrepancy < 0)        AS short_count,
	    COUNT(*) FILTER (WHERE s.discrepancy > 0)        AS over_count
	FROM shifts s
	JOIN cash_registers r ON r.id = s.cash_register_id
	WHERE r.location_id = $1
	  AND s.closed_at >= $2
	  AND s.closed_at <  $3`

	var t repository.ShiftTotals
	err := r.q.QueryRow(ctx, query, locationID, from, to).Scan(
		&t.ClosedShifts,
		&t.TotalSales,
		&t.TotalRefunds,
		&t.TotalDeposits,
		&t.TotalWithdrawals,
		&t.NetDiscrepancy,
		&t.ShortCount,
		&t.OverCount,
	)
	if err != nil {
		return repository.ShiftTotals{}, storeErr("analytics closed shift totals", err)
	}
	return t, nil
}

// CountOpenShifts turnos abiertos en este momento en las cajas de la sucursal.
func (r *AnalyticsRepo) CountOpenShifts(ctx context.Context, locationID string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM shifts s
	JOIN cash_registers r ON r.id = s.cash_register_id
	WHERE r.location_id = $1 AND s.closed_at IS NULL`

	var n int
	if err := r.q.QueryRow(ctx, query, locationID).Scan(&n); err != nil {
		return 0, storeErr("analytics count open shifts", err)
	}
	return n, nil
}
