package repository

import "github.com/tu-usuario/warehouse-mro/internal/domain/entity"

// EmployeeFilter filtros de listado de empleados.
type EmployeeFilter struct {
	Keyword string // match parcial sobre amann_id y name
	Active  *bool
	Title   string
	Limit   int
	Offset  int
}

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(amannID string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(filter EmployeeFilter) ([]*entity.Employee, error)
}
