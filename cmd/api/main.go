// @title        Caja API
// @version      1.0
// @description  Turnos de caja, libro de movimientos de efectivo y arqueo.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Caja-api/docs"
	"github.com/jhoicas/Caja-api/internal/application/analytics"
	"github.com/jhoicas/Caja-api/internal/application/register"
	"github.com/jhoicas/Caja-api/internal/application/shift"
	"github.com/jhoicas/Caja-api/internal/domain/repository"
	"github.com/jhoicas/Caja-api/internal/infrastructure/cache"
	"github.com/jhoicas/Caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/Caja-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Caja-api/internal/interfaces/http"
	"github.com/jhoicas/Caja-api/pkg/config"
	"github.com/jhoicas/Caja-api/pkg/logger"
	"github.com/jhoicas/Caja-api/pkg/money"
)

// txRunner lo cumplen postgres.TxRunner y memory.TxRunner.
type txRunner interface {
	shift.TxRunner
	register.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	currency, err := money.New(cfg.Cash.Currency)
	if err != nil {
		log.Fatal().Err(err).Str("currency", cfg.Cash.Currency).Msg("moneda de caja")
	}

	ctx := context.Background()
	var (
		runner        txRunner
		registerRepo  repository.CashRegisterRepository
		shiftRepo     repository.ShiftRepository
		movRepo       repository.CashMovementRepository
		analyticsRepo repository.CashAnalyticsRepository
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		runner = memory.NewTxRunner(store)
		registerRepo, shiftRepo, movRepo = store.Registers(), store.Shifts(), store.Movements()
		analyticsRepo = store.Analytics()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		runner = postgres.NewTxRunner(pool)
		registerRepo = postgres.NewCashRegisterRepository(pool)
		shiftRepo = postgres.NewShiftRepository(pool)
		movRepo = postgres.NewCashMovementRepository(pool)
		analyticsRepo = postgres.NewAnalyticsRepository(pool)
	}

	var reportCache shift.ReportCache = shift.NoopReportCache{}
	if cfg.Redis.Enabled() {
		rc := cache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			// sin cache los reportes se arman desde la base
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, cache de reportes desactivado")
			_ = rc.Close()
		} else {
			reportCache = rc
			defer rc.Close()
		}
		cancel()
	}

	registerUC := register.NewUseCase(runner, registerRepo, log.Component("register"))
	shiftUC := shift.NewUseCase(runner, registerRepo, shiftRepo, movRepo, reportCache, shift.Config{
		Currency:  currency,
		ReportTTL: time.Duration(cfg.Cash.ReportTTLMinutes) * time.Minute,
	}, log.Component("shift"))
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, currency)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Caja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "currency": currency.Code()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterUC:  registerUC,
		ShiftUC:     shiftUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
