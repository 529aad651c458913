package shift

import (
	"context"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/domain/cash"
)

// Summarize totales actuales del turno (abierto o cerrado), derivados del libro.
func (uc *UseCase) Summarize(ctx context.Context, shiftID string) (*dto.SummaryResponse, error) {
	shift, err := uc.getShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.ListByShift(ctx, shift.ID)
	if err != nil {
		return nil, err
	}
	s := cash.Summarize(shift.OpeningAmount, movements)
	return toSummaryResponse(s), nil
}
