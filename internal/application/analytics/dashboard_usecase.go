// Package analytics contiene el tablero de caja por sucursal: cierres del día y del mes.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
	"github.com/jhoicas/Caja-api/pkg/money"
)

// DashboardUseCase resume los cierres de caja de una sucursal.
//
// Fuente de datos: CashAnalyticsRepository (consultas read-only sobre el resumen
// estampado al cierre de cada turno).
type DashboardUseCase struct {
	analyticsRepo repository.CashAnalyticsRepository
	currency      money.Currency
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.CashAnalyticsRepository, currency money.Currency) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, currency: currency, now: time.Now}
}

// WithClock reemplaza el reloj; los rangos se calculan en la zona del instante devuelto.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el tablero de la sucursal.
//
// Tres consultas en paralelo:
//  1. GetClosedShiftTotals(hoy)
//  2. GetClosedShiftTotals(mes)
//  3. CountOpenShifts
func (uc *DashboardUseCase) GetSummary(ctx context.Context, locationID string) (*dto.CashDashboardResponse, error) {
	locationID = strings.TrimSpace(locationID)
	if locationID == "" {
		return nil, fmt.Errorf("%w: location_id es requerido", domain.ErrValidation)
	}
	now := uc.now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		totals repository.ShiftTotals
		err    error
	}
	type countResult struct {
		n   int
		err error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	openCh := make(chan countResult, 1)

	go func() {
		t, err := uc.analyticsRepo.GetClosedShiftTotals(ctx, locationID, todayStart, tomorrow)
		todayCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.GetClosedShiftTotals(ctx, locationID, monthStart, tomorrow)
		monthCh <- totalsResult{t, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOpenShifts(ctx, locationID)
		openCh <- countResult{n, err}
	}()

	today := <-todayCh
	month := <-monthCh
	open := <-openCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: cierres de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: cierres del mes: %w", month.err)
	}
	if open.err != nil {
		return nil, fmt.Errorf("dashboard: turnos abiertos: %w", open.err)
	}

	return &dto.CashDashboardResponse{
		LocationID: locationID,
		Currency:   uc.currency.Code(),
		Today:      uc.toTotals(today.totals),
		Month:      uc.toTotals(month.totals),
		OpenShifts: open.n,
		DateLabel:  monthLabel(now),
	}, nil
}

func (uc *DashboardUseCase) toTotals(t repository.ShiftTotals) dto.ShiftTotalsResponse {
	return dto.ShiftTotalsResponse{
		ClosedShifts:     t.ClosedShifts,
		TotalSales:       uc.currency.Round(t.TotalSales),
		TotalRefunds:     uc.currency.Round(t.TotalRefunds),
		TotalDeposits:    uc.currency.Round(t.TotalDeposits),
		TotalWithdrawals: uc.currency.Round(t.TotalWithdrawals),
		NetDiscrepancy:   uc.currency.Round(t.NetDiscrepancy),
		ShortCount:       t.ShortCount,
		OverCount:        t.OverCount,
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
