package shift

import (
	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/domain/cash"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// Estados expuestos de un turno.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

func toShiftResponse(s *entity.Shift, summary *cash.Summary) *dto.ShiftResponse {
	if s == nil {
		return nil
	}
	out := &dto.ShiftResponse{
		ID:             s.ID,
		CashRegisterID: s.CashRegisterID,
		OpenedBy:       s.OpenedBy,
		OpeningAmount:  s.OpeningAmount,
		OpeningNotes:   s.OpeningNotes,
		OpenedAt:       s.OpenedAt,
		ClosedBy:       s.ClosedBy,
		ClosingAmount:  s.ClosingAmount,
		ClosingNotes:   s.ClosingNotes,
		ClosedAt:       s.ClosedAt,
		ExpectedAmount: s.ExpectedAmount,
		Discrepancy:    s.Discrepancy,
		Status:         StatusOpen,
		ReportNotes:    s.ReportNotes,
	}
	if !s.IsOpen() {
		out.Status = StatusClosed
	}
	if summary != nil {
		out.Summary = toSummaryResponse(*summary)
	}
	return out
}

func toMovementResponse(m *entity.CashMovement) *dto.MovementResponse {
	meta := m.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return &dto.MovementResponse{
		ID:              m.ID,
		ShiftID:         m.ShiftID,
		UserID:          m.UserID,
		Type:            m.Type,
		Amount:          m.Amount,
		PaymentMethodID: m.PaymentMethodID,
		SaleID:          m.SaleID,
		Description:     m.Description,
		Metadata:        meta,
		CreatedAt:       m.CreatedAt,
	}
}

func toSummaryResponse(s cash.Summary) *dto.SummaryResponse {
	return &dto.SummaryResponse{
		OpeningAmount:    s.OpeningAmount,
		TotalSales:       s.TotalSales,
		TotalRefunds:     s.TotalRefunds,
		TotalDeposits:    s.TotalDeposits,
		TotalWithdrawals: s.TotalWithdrawals,
		SalesCount:       s.SalesCount,
		RefundsCount:     s.RefundsCount,
		MovementCount:    s.MovementCount,
		NetCashFlow:      s.NetCashFlow,
		ByPaymentMethod:  s.ByPaymentMethod,
	}
}

func toReconciliationResponse(r cash.Reconciliation) *dto.ReconciliationResponse {
	return &dto.ReconciliationResponse{
		Expected:    r.Expected,
		Counted:     r.Counted,
		Discrepancy: r.Discrepancy,
		Outcome:     r.Outcome,
	}
}
