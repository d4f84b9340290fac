package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de almacén (IMPORT/EXPORT) de
// forma transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre el
// repuesto y Commit/Rollback. El log nunca registra un movimiento rechazado
// contra el ledger: si el stock es insuficiente no se escribe nada.
type RecordMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository // lecturas fuera de transacción
	employeeRepo repository.EmployeeRepository
	machineRepo  repository.MachineRepository
	notifier     StockAlertNotifier // opcional
}

// NewRecordMovementUseCase construye el caso de uso. notifier puede ser nil.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	employeeRepo repository.EmployeeRepository,
	machineRepo repository.MachineRepository,
	notifier StockAlertNotifier,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		employeeRepo: employeeRepo,
		machineRepo:  machineRepo,
		notifier:     notifier,
	}
}

// RecordMovementInput entrada para registrar un movimiento.
// Quantity siempre positiva; la dirección la da Flag. MachinePosID solo aplica
// a salidas por consumo de equipo. IsFOC solo aplica a salidas.
type RecordMovementInput struct {
	PartID       string
	Quantity     int64
	Flag         string
	EmployeeID   string
	MachinePosID *int64
	Reason       string
	IsFOC        bool
}

// RecordMovement valida la entrada, bloquea la fila del repuesto, aplica el
// delta de stock y agrega la entrada al log, todo en una transacción.
//
// Reglas:
//   - IMPORT suma Quantity al stock.
//   - EXPORT resta Quantity; falla con ErrInsufficientStock si quedaría negativo.
//   - EXPORT FOC no altera el stock pero sí se registra en el log.
//   - reason es obligatoria en salidas no-FOC.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (*entity.Movement, error) {
	if input.Flag != entity.FlagImport && input.Flag != entity.FlagExport {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.IsFOC && input.Flag != entity.FlagExport {
		return nil, domain.ErrInvalidInput
	}
	if input.Flag == entity.FlagExport && !input.IsFOC && input.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.EmployeeID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Validar referencias fuera de la transacción (solo lecturas).
	empl, err := uc.employeeRepo.GetByID(input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if empl == nil {
		return nil, domain.ErrInvalidReference
	}
	if input.MachinePosID != nil {
		pos, err := uc.machineRepo.GetPositionByID(*input.MachinePosID)
		if err != nil {
			return nil, err
		}
		if pos == nil {
			return nil, domain.ErrInvalidReference
		}
	}

	reason := input.Reason
	if input.IsFOC && reason == "" {
		reason = entity.ReasonFOC
	}

	now := time.Now()
	mov := &entity.Movement{
		TransactionID: uuid.New().String(),
		PartID:        input.PartID,
		Quantity:      input.Quantity,
		Flag:          input.Flag,
		EmployeeID:    input.EmployeeID,
		MachinePosID:  input.MachinePosID,
		Reason:        reason,
		IsFOC:         input.IsFOC,
		CreatedAt:     now,
	}

	var afterPart *entity.SparePart
	err = uc.txRunner.Run(ctx, func(
		parts repository.SparePartRepository,
		movements repository.MovementRepository,
	) error {
		// Bloquea la fila del repuesto para serializar callers concurrentes
		// sobre el mismo material_no.
		part, err := parts.GetForUpdate(input.PartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		newStock := part.Stock + mov.StockDelta()
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		// La fecha derivada (import_date/export_date) se sella también en FOC,
		// aunque el stock no cambie.
		if err := parts.UpdateStock(part.MaterialNo, newStock, mov.Flag, now); err != nil {
			return err
		}
		if err := movements.Create(mov); err != nil {
			return err
		}
		part.Stock = newStock
		afterPart = part
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Alerta de stock de seguridad tras salidas, fuera de la transacción.
	if uc.notifier != nil && mov.Flag == entity.FlagExport && afterPart.BelowSafetyStock() {
		_ = uc.notifier.NotifyLowStock(ctx, afterPart)
	}
	return mov, nil
}

// ListMovements devuelve entradas del log, más recientes primero.
func (uc *RecordMovementUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return uc.movementRepo.List(filter)
}
