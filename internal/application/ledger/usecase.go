package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// PartLedgerUseCase administra el catálogo de repuestos: alta, edición
// administrativa y consultas. Es la vista autoritativa del stock actual.
//
// La edición administrativa (EditPart) sobrescribe campos sin pasar por el log
// de movimientos; es el escape deliberado para correcciones manuales y puede
// desincronizar el stock del historial.
type PartLedgerUseCase struct {
	txRunner     TxRunner
	partRepo     repository.SparePartRepository
	employeeRepo repository.EmployeeRepository
	machineRepo  repository.MachineRepository
}

// NewPartLedgerUseCase construye el caso de uso.
func NewPartLedgerUseCase(
	txRunner TxRunner,
	partRepo repository.SparePartRepository,
	employeeRepo repository.EmployeeRepository,
	machineRepo repository.MachineRepository,
) *PartLedgerUseCase {
	return &PartLedgerUseCase{
		txRunner:     txRunner,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		machineRepo:  machineRepo,
	}
}

// CreatePartInput entrada del alta de repuesto. Si InitialStock > 0 se exige
// EmployeeID para la entrada sintética del log.
type CreatePartInput struct {
	MaterialNo       string
	Description      string
	PartNo           string
	Bin              string
	CostCenter       string
	MachineTypeID    int64
	Price            decimal.Decimal
	InitialStock     int64
	SafetyStock      int64
	SafetyStockCheck bool
	EmployeeID       string
}

// CreatePart da de alta un repuesto. Si InitialStock > 0, escribe una entrada
// IMPORT sintética ("initial stock") en la misma transacción, de modo que el
// ledger y el log nacen reconciliados.
func (uc *PartLedgerUseCase) CreatePart(ctx context.Context, input CreatePartInput) (*entity.SparePart, error) {
	if input.MaterialNo == "" || input.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.InitialStock < 0 || input.SafetyStock < 0 || input.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	mt, err := uc.machineRepo.GetTypeByID(input.MachineTypeID)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrInvalidReference
	}
	if input.InitialStock > 0 {
		if input.EmployeeID == "" {
			return nil, domain.ErrInvalidInput
		}
		empl, err := uc.employeeRepo.GetByID(input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if empl == nil {
			return nil, domain.ErrInvalidReference
		}
	}

	now := time.Now()
	part := &entity.SparePart{
		MaterialNo:       input.MaterialNo,
		Description:      input.Description,
		PartNo:           input.PartNo,
		Bin:              input.Bin,
		CostCenter:       input.CostCenter,
		MachineTypeID:    input.MachineTypeID,
		Price:            input.Price,
		Stock:            input.InitialStock,
		SafetyStock:      input.SafetyStock,
		SafetyStockCheck: input.SafetyStockCheck,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if input.InitialStock > 0 {
		part.ImportDate = &now
	}

	err = uc.txRunner.Run(ctx, func(
		parts repository.SparePartRepository,
		movements repository.MovementRepository,
	) error {
		if err := parts.Create(part); err != nil {
			return err
		}
		if input.InitialStock > 0 {
			return movements.Create(&entity.Movement{
				TransactionID: uuid.New().String(),
				PartID:        input.MaterialNo,
				Quantity:      input.InitialStock,
				Flag:          entity.FlagImport,
				EmployeeID:    input.EmployeeID,
				Reason:        entity.ReasonInitialStock,
				CreatedAt:     now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return part, nil
}

// EditPartInput sobrescritura administrativa de un repuesto. Todos los campos
// se aplican tal cual, incluido Stock.
type EditPartInput struct {
	Description      string
	PartNo           string
	Bin              string
	CostCenter       string
	MachineTypeID    int64
	Price            decimal.Decimal
	Stock            int64
	SafetyStock      int64
	SafetyStockCheck bool
}

// EditPart sobrescribe los campos del repuesto sin registrar movimiento.
// Toma el mismo bloqueo de fila que RecordMovement, así una edición nunca se
// intercala dentro de un movimiento en vuelo sobre el mismo repuesto.
func (uc *PartLedgerUseCase) EditPart(ctx context.Context, materialNo string, input EditPartInput) (*entity.SparePart, error) {
	if input.Description == "" || input.Stock < 0 || input.SafetyStock < 0 || input.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	mt, err := uc.machineRepo.GetTypeByID(input.MachineTypeID)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrInvalidReference
	}

	var updated *entity.SparePart
	err = uc.txRunner.Run(ctx, func(
		parts repository.SparePartRepository,
		movements repository.MovementRepository,
	) error {
		part, err := parts.GetForUpdate(materialNo)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		part.Description = input.Description
		part.PartNo = input.PartNo
		part.Bin = input.Bin
		part.CostCenter = input.CostCenter
		part.MachineTypeID = input.MachineTypeID
		part.Price = input.Price
		part.Stock = input.Stock
		part.SafetyStock = input.SafetyStock
		part.SafetyStockCheck = input.SafetyStockCheck
		part.UpdatedAt = time.Now()
		if err := parts.Update(part); err != nil {
			return err
		}
		updated = part
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Get devuelve un repuesto por material_no.
func (uc *PartLedgerUseCase) Get(ctx context.Context, materialNo string) (*entity.SparePart, error) {
	part, err := uc.partRepo.GetByMaterialNo(materialNo)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return part, nil
}

// List devuelve repuestos aplicando los filtros (combinados con AND).
func (uc *PartLedgerUseCase) List(ctx context.Context, filter repository.PartFilter) ([]*entity.SparePart, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if (filter.MinStock != nil && *filter.MinStock < 0) || (filter.MaxStock != nil && *filter.MaxStock < 0) {
		return nil, domain.ErrInvalidInput
	}
	return uc.partRepo.List(filter)
}

// ListBelowSafetyStock devuelve los repuestos bajo su stock de seguridad.
func (uc *PartLedgerUseCase) ListBelowSafetyStock(ctx context.Context) ([]*entity.SparePart, error) {
	return uc.partRepo.ListBelowSafetyStock()
}
