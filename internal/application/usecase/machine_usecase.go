package usecase

import (
	"context"

	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// MachineTxRunner ejecuta una función con un MachineRepository atado a una
// transacción: máquina y posición inicial se insertan atómicamente.
type MachineTxRunner interface {
	RunMachines(ctx context.Context, fn func(machines repository.MachineRepository) error) error
}

// MachineUseCase administra tipos, grupos, máquinas y posiciones.
type MachineUseCase struct {
	txRunner    MachineTxRunner
	machineRepo repository.MachineRepository
}

// NewMachineUseCase construye el caso de uso.
func NewMachineUseCase(txRunner MachineTxRunner, machineRepo repository.MachineRepository) *MachineUseCase {
	return &MachineUseCase{txRunner: txRunner, machineRepo: machineRepo}
}

// CreateWithPosition da de alta una máquina junto con su primera posición en
// una sola transacción.
func (uc *MachineUseCase) CreateWithPosition(ctx context.Context, name string, groupID, deptID int64, position string) (*entity.Machine, error) {
	if name == "" || position == "" {
		return nil, domain.ErrInvalidInput
	}
	group, err := uc.machineRepo.GetGroupByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrInvalidReference
	}
	if deptID == 0 {
		deptID = 1 // departamento por defecto
	}
	machine := &entity.Machine{Name: name, GroupID: groupID, DeptID: deptID}
	err = uc.txRunner.RunMachines(ctx, func(machines repository.MachineRepository) error {
		if err := machines.CreateMachine(machine); err != nil {
			return err
		}
		return machines.CreatePosition(&entity.MachinePosition{MachineID: machine.ID, Position: position})
	})
	if err != nil {
		return nil, err
	}
	return machine, nil
}

// ListMachines devuelve máquinas aplicando los filtros.
func (uc *MachineUseCase) ListMachines(ctx context.Context, filter repository.MachineFilter) ([]*entity.Machine, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	return uc.machineRepo.ListMachines(filter)
}

// ListTypes devuelve los tipos de máquina.
func (uc *MachineUseCase) ListTypes(ctx context.Context) ([]*entity.MachineType, error) {
	return uc.machineRepo.ListTypes()
}

// ListGroups devuelve los grupos de máquina.
func (uc *MachineUseCase) ListGroups(ctx context.Context) ([]*entity.MachineGroup, error) {
	return uc.machineRepo.ListGroups()
}

// ListPositions devuelve las posiciones de una máquina.
func (uc *MachineUseCase) ListPositions(ctx context.Context, machineID int64) ([]*entity.MachinePosition, error) {
	return uc.machineRepo.ListPositionsByMachine(machineID)
}
