package repository

import "github.com/tu-usuario/warehouse-mro/internal/domain/entity"

// MachineFilter filtros de listado de máquinas.
type MachineFilter struct {
	GroupID *int64
	Name    string // match parcial
	Limit   int
	Offset  int
}

// MachineRepository define el puerto de persistencia para tipos, grupos,
// máquinas y posiciones. Las entidades de referencia no tienen más invariante
// que la unicidad del identificador.
type MachineRepository interface {
	ListTypes() ([]*entity.MachineType, error)
	GetTypeByID(id int64) (*entity.MachineType, error)
	ListGroups() ([]*entity.MachineGroup, error)
	GetGroupByID(id int64) (*entity.MachineGroup, error)
	CreateMachine(machine *entity.Machine) error
	ListMachines(filter MachineFilter) ([]*entity.Machine, error)
	CreatePosition(position *entity.MachinePosition) error
	GetPositionByID(id int64) (*entity.MachinePosition, error)
	ListPositionsByMachine(machineID int64) ([]*entity.MachinePosition, error)
}
