package register

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Caja-api/internal/application/dto"
	"github.com/jhoicas/Caja-api/internal/domain"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repositorios de cajas y turnos atados a ella.
type TxRunner interface {
	RunRegisters(ctx context.Context, fn func(
		registerRepo repository.CashRegisterRepository,
		shiftRepo repository.ShiftRepository,
	) error) error
}

// UseCase registro de cajas por sucursal: alta, consulta, renombrado, (des)activación y caja principal.
type UseCase struct {
	txRunner     TxRunner
	registerRepo repository.CashRegisterRepository
	log          zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, registerRepo repository.CashRegisterRepository, log zerolog.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, registerRepo: registerRepo, log: log}
}

// Create da de alta una caja activa. Si IsMain, desmarca la principal anterior de la sucursal.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCashRegisterRequest) (*dto.CashRegisterResponse, error) {
	in.LocationID = strings.TrimSpace(in.LocationID)
	in.Name = strings.TrimSpace(in.Name)
	if in.LocationID == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: location_id y name son requeridos", domain.ErrValidation)
	}
	now := time.Now().UTC()
	reg := &entity.CashRegister{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		Name:       in.Name,
		IsActive:   true,
		IsMain:     in.IsMain,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.txRunner.RunRegisters(ctx, func(registerRepo repository.CashRegisterRepository, _ repository.ShiftRepository) error {
		if reg.IsMain {
			if err := registerRepo.ClearMain(ctx, reg.LocationID, reg.ID); err != nil {
				return err
			}
		}
		return registerRepo.Create(ctx, reg)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("register_id", reg.ID).Str("location_id", reg.LocationID).Bool("is_main", reg.IsMain).Msg("caja creada")
	return toRegisterResponse(reg), nil
}

// GetByID obtiene una caja; ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.CashRegisterResponse, error) {
	reg, err := uc.registerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: caja %s", domain.ErrNotFound, id)
	}
	return toRegisterResponse(reg), nil
}

// ListByLocation lista las cajas de una sucursal (principal primero).
func (uc *UseCase) ListByLocation(ctx context.Context, locationID string, includeInactive bool) (*dto.CashRegisterListResponse, error) {
	if strings.TrimSpace(locationID) == "" {
		return nil, fmt.Errorf("%w: location_id es requerido", domain.ErrValidation)
	}
	list, err := uc.registerRepo.ListByLocation(ctx, locationID, includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashRegisterResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRegisterResponse(r))
	}
	return &dto.CashRegisterListResponse{Items: items}, nil
}

// Rename cambia el nombre visible de la caja.
func (uc *UseCase) Rename(ctx context.Context, id string, in dto.RenameCashRegisterRequest) (*dto.CashRegisterResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	return uc.mutate(ctx, id, func(reg *entity.CashRegister, _ repository.CashRegisterRepository, _ repository.ShiftRepository) error {
		reg.Name = name
		return nil
	})
}

// Deactivate desactiva la caja (baja lógica). ErrConflict si tiene un turno abierto.
func (uc *UseCase) Deactivate(ctx context.Context, id string) (*dto.CashRegisterResponse, error) {
	out, err := uc.mutate(ctx, id, func(reg *entity.CashRegister, _ repository.CashRegisterRepository, shiftRepo repository.ShiftRepository) error {
		open, err := shiftRepo.GetOpenByRegister(ctx, reg.ID)
		if err != nil {
			return err
		}
		if open != nil {
			return fmt.Errorf("%w: la caja tiene el turno %s abierto", domain.ErrConflict, open.ID)
		}
		reg.IsActive = false
		reg.IsMain = false
		return nil
	})
	if err == nil {
		uc.log.Info().Str("register_id", id).Msg("caja desactivada")
	}
	return out, err
}

// Activate reactiva una caja desactivada.
func (uc *UseCase) Activate(ctx context.Context, id string) (*dto.CashRegisterResponse, error) {
	return uc.mutate(ctx, id, func(reg *entity.CashRegister, _ repository.CashRegisterRepository, _ repository.ShiftRepository) error {
		reg.IsActive = true
		return nil
	})
}

// SetMain marca la caja como principal de su sucursal y desmarca la anterior en la misma transacción.
func (uc *UseCase) SetMain(ctx context.Context, id string) (*dto.CashRegisterResponse, error) {
	return uc.mutate(ctx, id, func(reg *entity.CashRegister, registerRepo repository.CashRegisterRepository, _ repository.ShiftRepository) error {
		if !reg.IsActive {
			return fmt.Errorf("%w: una caja inactiva no puede ser principal", domain.ErrConflict)
		}
		if err := registerRepo.ClearMain(ctx, reg.LocationID, reg.ID); err != nil {
			return err
		}
		reg.IsMain = true
		return nil
	})
}

// mutate bloquea la caja, aplica fn y persiste, todo en una transacción.
func (uc *UseCase) mutate(ctx context.Context, id string, fn func(
	reg *entity.CashRegister,
	registerRepo repository.CashRegisterRepository,
	shiftRepo repository.ShiftRepository,
) error) (*dto.CashRegisterResponse, error) {
	var out *entity.CashRegister
	err := uc.txRunner.RunRegisters(ctx, func(registerRepo repository.CashRegisterRepository, shiftRepo repository.ShiftRepository) error {
		reg, err := registerRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if reg == nil {
			return fmt.Errorf("%w: caja %s", domain.ErrNotFound, id)
		}
		if err := fn(reg, registerRepo, shiftRepo); err != nil {
			return err
		}
		reg.UpdatedAt = time.Now().UTC()
		if err := registerRepo.Update(ctx, reg); err != nil {
			return err
		}
		out = reg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRegisterResponse(out), nil
}

func toRegisterResponse(r *entity.CashRegister) *dto.CashRegisterResponse {
	if r == nil {
		return nil
	}
	return &dto.CashRegisterResponse{
		ID:         r.ID,
		LocationID: r.LocationID,
		Name:       r.Name,
		IsActive:   r.IsActive,
		IsMain:     r.IsMain,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ToResponse expone el mapeo para otros casos de uso (reporte de turno).
func ToResponse(r *entity.CashRegister) *dto.CashRegisterResponse {
	return toRegisterResponse(r)
}
