package shift

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Caja-api/internal/domain/repository"
	"github.com/jhoicas/Caja-api/pkg/money"
)

// UseCase núcleo de caja: ciclo de vida del turno, libro de movimientos,
// resumen/conciliación y reporte. Cada operación es una sola transacción.
type UseCase struct {
	txRunner     TxRunner
	registerRepo repository.CashRegisterRepository
	shiftRepo    repository.ShiftRepository
	movRepo      repository.CashMovementRepository
	cache        ReportCache
	currency     money.Currency
	reportTTL    time.Duration
	log          zerolog.Logger
	now          func() time.Time
}

// Config parámetros del caso de uso.
type Config struct {
	Currency  money.Currency
	ReportTTL time.Duration
}

// NewUseCase construye el caso de uso. cache nil equivale a NoopReportCache.
func NewUseCase(
	txRunner TxRunner,
	registerRepo repository.CashRegisterRepository,
	shiftRepo repository.ShiftRepository,
	movRepo repository.CashMovementRepository,
	cache ReportCache,
	cfg Config,
	log zerolog.Logger,
) *UseCase {
	if cache == nil {
		cache = NoopReportCache{}
	}
	if cfg.ReportTTL <= 0 {
		cfg.ReportTTL = 24 * time.Hour
	}
	return &UseCase{
		txRunner:     txRunner,
		registerRepo: registerRepo,
		shiftRepo:    shiftRepo,
		movRepo:      movRepo,
		cache:        cache,
		currency:     cfg.Currency,
		reportTTL:    cfg.ReportTTL,
		log:          log,
		now: func() time.Time {
			// PostgreSQL guarda microsegundos; truncar mantiene iguales memoria y DB.
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}
