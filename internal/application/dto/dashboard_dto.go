package dto

import "github.com/shopspring/decimal"

// CashDashboardResponse respuesta de GET /api/dashboard/cash.
// Cierres de caja del día y del mes en curso de una sucursal, más los turnos abiertos ahora.
type CashDashboardResponse struct {
	LocationID string              `json:"location_id"`
	Currency   string              `json:"currency"`
	Today      ShiftTotalsResponse `json:"today"` // 00:00 – 23:59
	Month      ShiftTotalsResponse `json:"month"` // día 1 – hoy
	OpenShifts int                 `json:"open_shifts"`
	DateLabel  string              `json:"date_label"` // ej: "Febrero 2026"
}

// ShiftTotalsResponse agregados de turnos cerrados en un periodo.
type ShiftTotalsResponse struct {
	ClosedShifts     int             `json:"closed_shifts"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalRefunds     decimal.Decimal `json:"total_refunds"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	NetDiscrepancy   decimal.Decimal `json:"net_discrepancy"` // negativo = faltante neto
	ShortCount       int             `json:"short_count"`
	OverCount        int             `json:"over_count"`
}
