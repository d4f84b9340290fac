package usecase

import (
	"context"

	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// EmployeeUseCase administra el registro de empleados (entidad de referencia:
// los movimientos de almacén exigen que el actor exista).
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo}
}

// Create da de alta un empleado. AmannID y Name son obligatorios; AmannID duplicado falla.
func (uc *EmployeeUseCase) Create(ctx context.Context, employee *entity.Employee) error {
	if employee.AmannID == "" || employee.Name == "" {
		return domain.ErrInvalidInput
	}
	return uc.employeeRepo.Create(employee)
}

// Get devuelve un empleado por su AmannID.
func (uc *EmployeeUseCase) Get(ctx context.Context, amannID string) (*entity.Employee, error) {
	empl, err := uc.employeeRepo.GetByID(amannID)
	if err != nil {
		return nil, err
	}
	if empl == nil {
		return nil, domain.ErrNotFound
	}
	return empl, nil
}

// Update modifica nombre, cargo, nivel y estado de un empleado existente.
func (uc *EmployeeUseCase) Update(ctx context.Context, amannID, name, title, level string, active bool) (*entity.Employee, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	empl, err := uc.employeeRepo.GetByID(amannID)
	if err != nil {
		return nil, err
	}
	if empl == nil {
		return nil, domain.ErrNotFound
	}
	empl.Name = name
	empl.Title = title
	empl.Level = level
	empl.Active = active
	if err := uc.employeeRepo.Update(empl); err != nil {
		return nil, err
	}
	return empl, nil
}

// List devuelve empleados aplicando los filtros.
func (uc *EmployeeUseCase) List(ctx context.Context, filter repository.EmployeeFilter) ([]*entity.Employee, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return uc.employeeRepo.List(filter)
}
