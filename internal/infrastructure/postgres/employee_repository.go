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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `
	amann_id, name, title, level, active, birthday, start_date,
	address, phone_number, email, gender`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.AmannID, &e.Name, &e.Title, &e.Level, &e.Active, &e.Birthday,
		&e.StartDate, &e.Address, &e.PhoneNumber, &e.Email, &e.Gender,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserta un empleado. amann_id duplicado retorna ErrDuplicate.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		employee.AmannID, employee.Name, employee.Title, employee.Level,
		employee.Active, employee.Birthday, employee.StartDate,
		employee.Address, employee.PhoneNumber, employee.Email, employee.Gender,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por su amann_id. Retorna (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(amannID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE amann_id = $1`
	e, err := scanEmployee(r.q.QueryRow(context.Background(), query, amannID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update sobrescribe los campos editables del empleado.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, title = $2, level = $3, active = $4, birthday = $5,
		    start_date = $6, address = $7, phone_number = $8, email = $9, gender = $10
		WHERE amann_id = $11`
	tag, err := r.q.Exec(context.Background(), query,
		employee.Name, employee.Title, employee.Level, employee.Active,
		employee.Birthday, employee.StartDate, employee.Address,
		employee.PhoneNumber, employee.Email, employee.Gender, employee.AmannID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve empleados aplicando los filtros.
func (r *EmployeeRepo) List(filter repository.EmployeeFilter) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Keyword != "" {
		query += fmt.Sprintf(` AND (amann_id ILIKE $%d OR name ILIKE $%d)`, argPos, argPos)
		args = append(args, "%"+filter.Keyword+"%")
		argPos++
	}
	if filter.Active != nil {
		query += fmt.Sprintf(` AND active = $%d`, argPos)
		args = append(args, *filter.Active)
		argPos++
	}
	if filter.Title != "" {
		query += fmt.Sprintf(` AND title = $%d`, argPos)
		args = append(args, filter.Title)
		argPos++
	}

	query += ` ORDER BY amann_id`
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
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
