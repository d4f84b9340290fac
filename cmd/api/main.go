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
	"github.com/tu-usuario/warehouse-mro/internal/application/auth"
	"github.com/tu-usuario/warehouse-mro/internal/application/ledger"
	"github.com/tu-usuario/warehouse-mro/internal/application/movement"
	"github.com/tu-usuario/warehouse-mro/internal/application/reporting"
	"github.com/tu-usuario/warehouse-mro/internal/application/usecase"
	"github.com/tu-usuario/warehouse-mro/internal/infrastructure/notify"
	"github.com/tu-usuario/warehouse-mro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/warehouse-mro/internal/interfaces/http"
	"github.com/tu-usuario/warehouse-mro/pkg/config"
	"github.com/tu-usuario/warehouse-mro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	partRepo := postgres.NewSparePartRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := notify.NewMailer(cfg.SMTP, log)

	partLedgerUC := ledger.NewPartLedgerUseCase(txRunner, partRepo, employeeRepo, machineRepo)
	recordMovementUC := movement.NewRecordMovementUseCase(txRunner, movementRepo, employeeRepo, machineRepo, mailer)
	dashboardUC := reporting.NewDashboardUseCase(analyticsRepo, movementRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	machineUC := usecase.NewMachineUseCase(txRunner, machineRepo)
	authUC := auth.NewAuthUseCase(cfg.Auth.WarehousePINHash, cfg.Auth.AdminPINHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Warehouse MRO API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartLedgerUC:     partLedgerUC,
		RecordMovementUC: recordMovementUC,
		DashboardUC:      dashboardUC,
		EmployeeUC:       employeeUC,
		MachineUC:        machineUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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
