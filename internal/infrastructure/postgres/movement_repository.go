package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
// El log es append-only: solo INSERT y lecturas.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del log de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento y asigna su ID secuencial.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (
			transaction_id, part_id, quantity, flag, employee_id,
			machine_pos_id, reason, is_foc, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.TransactionID, movement.PartID, movement.Quantity, movement.Flag,
		movement.EmployeeID, movement.MachinePosID, movement.Reason,
		movement.IsFOC, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve movimientos aplicando los filtros, del más reciente al más antiguo.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT id, transaction_id, part_id, quantity, flag, employee_id,
		       machine_pos_id, reason, is_foc, created_at
		FROM movements
		WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.PartID != "" {
		query += fmt.Sprintf(` AND part_id = $%d`, argPos)
		args = append(args, filter.PartID)
		argPos++
	}
	if filter.EmployeeID != "" {
		query += fmt.Sprintf(` AND employee_id = $%d`, argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Flag != "" {
		query += fmt.Sprintf(` AND flag = $%d`, argPos)
		args = append(args, filter.Flag)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(` AND created_at >= $%d`, argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(` AND created_at <= $%d`, argPos)
		args = append(args, *filter.To)
		argPos++
	}

	query += ` ORDER BY id DESC`
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
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		err := rows.Scan(
			&m.ID, &m.TransactionID, &m.PartID, &m.Quantity, &m.Flag,
			&m.EmployeeID, &m.MachinePosID, &m.Reason, &m.IsFOC, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// AggregateByDay agrupa cantidades por día para una dirección, en un rango opcional.
func (r *MovementRepo) AggregateByDay(flag string, from, to *time.Time) ([]repository.DayTotal, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COALESCE(SUM(quantity), 0)::bigint
		FROM movements
		WHERE flag = $1`
	args := []any{flag}
	argPos := 2

	if from != nil {
		query += fmt.Sprintf(` AND created_at >= $%d`, argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += fmt.Sprintf(` AND created_at <= $%d`, argPos)
		args = append(args, *to)
	}
	query += ` GROUP BY day ORDER BY day`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate movements by day: %w", err)
	}
	defer rows.Close()

	var totals []repository.DayTotal
	for rows.Next() {
		var t repository.DayTotal
		if err := rows.Scan(&t.Day, &t.Total); err != nil {
			return nil, fmt.Errorf("scan day total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// AggregateByPart agrupa cantidades por repuesto para una dirección, en un rango opcional.
func (r *MovementRepo) AggregateByPart(flag string, from, to *time.Time) ([]repository.PartTotal, error) {
	query := `
		SELECT m.part_id, COALESCE(p.description, ''), COALESCE(SUM(m.quantity), 0)::bigint AS total
		FROM movements m
		LEFT JOIN spare_parts p ON p.material_no = m.part_id
		WHERE m.flag = $1`
	args := []any{flag}
	argPos := 2

	if from != nil {
		query += fmt.Sprintf(` AND m.created_at >= $%d`, argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += fmt.Sprintf(` AND m.created_at <= $%d`, argPos)
		args = append(args, *to)
	}
	query += ` GROUP BY m.part_id, p.description ORDER BY total DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate movements by part: %w", err)
	}
	defer rows.Close()

	var totals []repository.PartTotal
	for rows.Next() {
		var t repository.PartTotal
		if err := rows.Scan(&t.PartID, &t.Description, &t.Total); err != nil {
			return nil, fmt.Errorf("scan part total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TotalByFlag suma todas las cantidades registradas con la dirección dada.
func (r *MovementRepo) TotalByFlag(flag string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0)::bigint FROM movements WHERE flag = $1`, flag,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total by flag: %w", err)
	}
	return total, nil
}
