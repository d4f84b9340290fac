package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-mro/internal/application/auth"
	"github.com/tu-usuario/warehouse-mro/internal/application/ledger"
	"github.com/tu-usuario/warehouse-mro/internal/application/movement"
	"github.com/tu-usuario/warehouse-mro/internal/application/reporting"
	"github.com/tu-usuario/warehouse-mro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PartLedgerUC     *ledger.PartLedgerUseCase
	RecordMovementUC *movement.RecordMovementUseCase
	DashboardUC      *reporting.DashboardUseCase
	EmployeeUC       *usecase.EmployeeUseCase
	MachineUC        *usecase.MachineUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de repuestos (lecturas: cualquier rol; escrituras: solo admin)
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartLedgerUC)
	parts.Get("/", partHandler.List)
	parts.Get("/alerts", partHandler.ListBelowSafetyStock)
	parts.Get("/:material_no", partHandler.GetByMaterialNo)
	parts.Post("/", RequireAdmin(), partHandler.Create)
	parts.Put("/:material_no", RequireAdmin(), partHandler.Update)

	// Log de movimientos (cualquier rol)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordMovementUC)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.List)

	// Dashboard y agregados (cualquier rol)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
	movements.Get("/aggregate", dashboardHandler.Aggregates)

	// Empleados (solo admin)
	employees := protected.Group("/employees", RequireAdmin())
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:amann_id", employeeHandler.GetByID)
	employees.Put("/:amann_id", employeeHandler.Update)

	// Máquinas y catálogo (lecturas: cualquier rol; alta: solo admin)
	machines := protected.Group("/machines")
	machineHandler := NewMachineHandler(deps.MachineUC)
	machines.Get("/", machineHandler.List)
	machines.Get("/types", machineHandler.ListTypes)
	machines.Get("/groups", machineHandler.ListGroups)
	machines.Get("/:id/positions", machineHandler.ListPositions)
	machines.Post("/", RequireAdmin(), machineHandler.Create)
}
