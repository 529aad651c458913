package shift

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/application/register"
	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/cash"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// BuildReport arma el reporte del turno: caja, turno, libro, resumen y, si está cerrado, el arqueo.
// Los reportes de turnos cerrados se guardan en cache bajo reportKey; las fallas de cache solo se registran.
func (uc *UseCase) BuildReport(ctx context.Context, shiftID string) (*dto.ShiftReportResponse, error) {
	shift, err := uc.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	key := reportKey(shift)
	if !shift.IsOpen() {
		if cached, ok, err := uc.cache.Get(ctx, key); err != nil {
			uc.log.Warn().Err(err).Str("shift_id", shift.ID).Msg("leer reporte en cache")
		} else if ok {
			return cached, nil
		}
	}

	reg, err := uc.registerRepo.GetByID(ctx, shift.CashRegisterID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: caja %s del turno %s", domain.ErrNotFound, shift.CashRegisterID, shift.ID)
	}
	movements, err := uc.movRepo.ListByShift(ctx, shift.ID)
	if err != nil {
		return nil, err
	}

	s := cash.Summarize(shift.OpeningAmount, movements)
	report := &dto.ShiftReportResponse{
		Currency:    uc.currency.Code(),
		Register:    register.ToResponse(reg),
		Shift:       *toShiftResponse(shift, nil),
		Movements:   make([]dto.MovementResponse, 0, len(movements)),
		Summary:     *toSummaryResponse(s),
		GeneratedAt: uc.now(),
	}
	for _, m := range movements {
		report.Movements = append(report.Movements, *toMovementResponse(m))
	}
	if shift.IsOpen() {
		return report, nil
	}

	counted := shift.OpeningAmount
	if shift.ClosingAmount != nil {
		counted = *shift.ClosingAmount
	}
	rec := cash.Reconcile(s, counted)
	report.Reconciliation = toReconciliationResponse(rec)

	// si una anotación entra mientras se arma, queda guardado bajo la versión vieja y nadie lo vuelve a leer
	if err := uc.cache.Set(ctx, key, report, uc.reportTTL); err != nil {
		uc.log.Warn().Err(err).Str("shift_id", shift.ID).Msg("guardar reporte en cache")
	}
	return report, nil
}

// reportKey identifica el reporte de un turno en una versión de anotaciones dada.
func reportKey(s *entity.Shift) string {
	return s.ID + ":v" + strconv.Itoa(s.ReportVersion)
}
