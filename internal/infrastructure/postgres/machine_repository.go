package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo implementación de MachineRepository sobre PostgreSQL.
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el adaptador de máquinas. Pasar pool o tx (Querier).
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// ListTypes devuelve todos los tipos de máquina.
func (r *MachineRepo) ListTypes() ([]*entity.MachineType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, machine FROM machine_types ORDER BY machine`)
	if err != nil {
		return nil, fmt.Errorf("list machine types: %w", err)
	}
	defer rows.Close()

	var types []*entity.MachineType
	for rows.Next() {
		var t entity.MachineType
		if err := rows.Scan(&t.ID, &t.Machine); err != nil {
			return nil, fmt.Errorf("scan machine type: %w", err)
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}

// GetTypeByID obtiene un tipo de máquina. Retorna (nil, nil) si no existe.
func (r *MachineRepo) GetTypeByID(id int64) (*entity.MachineType, error) {
	var t entity.MachineType
	err := r.q.QueryRow(context.Background(),
		`SELECT id, machine FROM machine_types WHERE id = $1`, id,
	).Scan(&t.ID, &t.Machine)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine type: %w", err)
	}
	return &t, nil
}

// ListGroups devuelve todos los grupos de máquina.
func (r *MachineRepo) ListGroups() ([]*entity.MachineGroup, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, mc_name FROM machine_groups ORDER BY mc_name`)
	if err != nil {
		return nil, fmt.Errorf("list machine groups: %w", err)
	}
	defer rows.Close()

	var groups []*entity.MachineGroup
	for rows.Next() {
		var g entity.MachineGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan machine group: %w", err)
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}

// GetGroupByID obtiene un grupo de máquina. Retorna (nil, nil) si no existe.
func (r *MachineRepo) GetGroupByID(id int64) (*entity.MachineGroup, error) {
	var g entity.MachineGroup
	err := r.q.QueryRow(context.Background(),
		`SELECT id, mc_name FROM machine_groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine group: %w", err)
	}
	return &g, nil
}

// CreateMachine inserta una máquina y asigna su ID.
func (r *MachineRepo) CreateMachine(machine *entity.Machine) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO machines (name, group_mc_id, dept_id) VALUES ($1, $2, $3) RETURNING id`,
		machine.Name, machine.GroupID, machine.DeptID,
	).Scan(&machine.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("create machine: %w", err)
	}
	return nil
}

// ListMachines devuelve máquinas con el nombre de su grupo, aplicando los filtros.
func (r *MachineRepo) ListMachines(filter repository.MachineFilter) ([]*entity.Machine, error) {
	query := `
		SELECT m.id, m.name, m.group_mc_id, COALESCE(g.mc_name, ''), m.dept_id
		FROM machines m
		LEFT JOIN machine_groups g ON g.id = m.group_mc_id
		WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.GroupID != nil {
		query += fmt.Sprintf(` AND m.group_mc_id = $%d`, argPos)
		args = append(args, *filter.GroupID)
		argPos++
	}
	if filter.Name != "" {
		query += fmt.Sprintf(` AND m.name ILIKE $%d`, argPos)
		args = append(args, "%"+filter.Name+"%")
		argPos++
	}

	query += ` ORDER BY m.name`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, argPos)
		args = append(args, filter.Limit)
		argPos++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argPos)
		args = append(args, filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()

	var machines []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.GroupID, &m.GroupName, &m.DeptID); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		machines = append(machines, &m)
	}
	return machines, rows.Err()
}

// CreatePosition inserta una posición de máquina y asigna su ID.
func (r *MachineRepo) CreatePosition(position *entity.MachinePosition) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO machine_positions (mc_id, mc_pos) VALUES ($1, $2) RETURNING id`,
		position.MachineID, position.Position,
	).Scan(&position.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("create machine position: %w", err)
	}
	return nil
}

// GetPositionByID obtiene una posición de máquina. Retorna (nil, nil) si no existe.
func (r *MachineRepo) GetPositionByID(id int64) (*entity.MachinePosition, error) {
	var p entity.MachinePosition
	err := r.q.QueryRow(context.Background(),
		`SELECT id, mc_id, mc_pos FROM machine_positions WHERE id = $1`, id,
	).Scan(&p.ID, &p.MachineID, &p.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine position: %w", err)
	}
	return &p, nil
}

// ListPositionsByMachine devuelve las posiciones de una máquina.
func (r *MachineRepo) ListPositionsByMachine(machineID int64) ([]*entity.MachinePosition, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, mc_id, mc_pos FROM machine_positions WHERE mc_id = $1 ORDER BY mc_pos`,
		machineID)
	if err != nil {
		return nil, fmt.Errorf("list machine positions: %w", err)
	}
	defer rows.Close()

	var positions []*entity.MachinePosition
	for rows.Next() {
		var p entity.MachinePosition
		if err := rows.Scan(&p.ID, &p.MachineID, &p.Position); err != nil {
			return nil, fmt.Errorf("scan machine position: %w", err)
		}
		positions = append(positions, &p)
	}
	return positions, rows.Err()
}
