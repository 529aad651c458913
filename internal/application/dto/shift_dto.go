package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenShiftRequest body para POST /api/shifts.
type OpenShiftRequest struct {
	CashRegisterID string          `json:"cash_register_id"`
	OpeningAmount  decimal.Decimal `json:"opening_amount"`
	Notes          string          `json:"notes,omitempty"`
}

// CloseShiftRequest body para POST /api/shifts/{id}/close.
type CloseShiftRequest struct {
	CountedAmount decimal.Decimal `json:"counted_amount"`
	Notes         string          `json:"notes,omitempty"`
}

// AnnotateShiftRequest body para PUT /api/shifts/{id}/annotations.
type AnnotateShiftRequest struct {
	Notes string `json:"notes"`
}

// RecordMovementRequest body para POST /api/shifts/{id}/movements.
// Amount siempre positivo; el signo lo aplica el tipo.
type RecordMovementRequest struct {
	Type            string          `json:"type"` // sale | refund | deposit | withdrawal
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	PaymentMethodID string          `json:"payment_method_id,omitempty"`
	SaleID          string          `json:"sale_id,omitempty"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
}

// ShiftResponse salida de un turno.
type ShiftResponse struct {
	ID             string           `json:"id"`
	CashRegisterID string           `json:"cash_register_id"`
	OpenedBy       string           `json:"opened_by"`
	OpeningAmount  decimal.Decimal  `json:"opening_amount"`
	OpeningNotes   string           `json:"opening_notes,omitempty"`
	OpenedAt       time.Time        `json:"opened_at"`
	ClosedBy       string           `json:"closed_by,omitempty"`
	ClosingAmount  *decimal.Decimal `json:"closing_amount,omitempty"`
	ClosingNotes   string           `json:"closing_notes,omitempty"`
	ClosedAt       *time.Time       `json:"closed_at,omitempty"`
	ExpectedAmount *decimal.Decimal `json:"expected_amount,omitempty"`
	Discrepancy    *decimal.Decimal `json:"discrepancy,omitempty"`
	Status         string           `json:"status"` // open | closed
	ReportNotes    string           `json:"report_notes,omitempty"`
	Summary        *SummaryResponse `json:"summary,omitempty"`
}

// ShiftListResponse historial paginado de turnos de una caja.
type ShiftListResponse struct {
	Items []ShiftResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CurrentShiftResponse turno abierto del contexto; Shift es null si no hay.
type CurrentShiftResponse struct {
	Shift *ShiftResponse `json:"shift"`
}

// MovementResponse salida de un movimiento de efectivo.
type MovementResponse struct {
	ID              string          `json:"id"`
	ShiftID         string          `json:"shift_id"`
	UserID          string          `json:"user_id"`
	Type            string          `json:"movement_type"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethodID string          `json:"payment_method_id,omitempty"`
	SaleID          string          `json:"sale_id,omitempty"`
	Description     string          `json:"description,omitempty"`
	Metadata        map[string]any  `json:"metadata"`
	CreatedAt       time.Time       `json:"created_at"`
}

// MovementListResponse libro completo de un turno (más antiguo primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// SummaryResponse totales derivados del libro.
type SummaryResponse struct {
	OpeningAmount    decimal.Decimal            `json:"opening_amount"`
	TotalSales       decimal.Decimal            `json:"total_sales"`
	TotalRefunds     decimal.Decimal            `json:"total_refunds"`
	TotalDeposits    decimal.Decimal            `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal            `json:"total_withdrawals"`
	SalesCount       int                        `json:"sales_count"`
	RefundsCount     int                        `json:"refunds_count"`
	MovementCount    int                        `json:"movement_count"`
	NetCashFlow      decimal.Decimal            `json:"net_cash_flow"`
	ByPaymentMethod  map[string]decimal.Decimal `json:"by_payment_method,omitempty"`
}

// ReconciliationResponse arqueo al cierre.
type ReconciliationResponse struct {
	Expected    decimal.Decimal `json:"expected"`
	Counted     decimal.Decimal `json:"counted"`
	Discrepancy decimal.Decimal `json:"discrepancy"`
	Outcome     string          `json:"outcome"` // balanced | over | short
}

// ShiftReportResponse proyección de solo lectura de un turno para impresión/exportación.
type ShiftReportResponse struct {
	Currency       string                  `json:"currency"`
	Register       *CashRegisterResponse   `json:"register,omitempty"`
	Shift          ShiftResponse           `json:"shift"`
	Movements      []MovementResponse      `json:"movements"`
	Summary        SummaryResponse         `json:"summary"`
	Reconciliation *ReconciliationResponse `json:"reconciliation,omitempty"`
	GeneratedAt    time.Time               `json:"generated_at"`
}
