package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

var _ repository.SparePartRepository = (*SparePartRepo)(nil)

// SparePartRepo implementación de SparePartRepository sobre PostgreSQL (usable con pool o tx).
type SparePartRepo struct {
	q Querier
}

// NewSparePartRepository construye el adaptador de repuestos. Pasar pool o tx (Querier).
func NewSparePartRepository(q Querier) *SparePartRepo {
	return &SparePartRepo{q: q}
}

const sparePartColumns = `
	p.material_no, p.description, p.part_no, p.bin, p.cost_center,
	p.machine_type_id, COALESCE(mt.machine, ''), p.price, p.stock,
	p.safety_stock, p.safety_stock_check, p.import_date, p.export_date,
	p.created_at, p.updated_at`

func scanSparePart(row pgx.Row) (*entity.SparePart, error) {
	var p entity.SparePart
	err := row.Scan(
		&p.MaterialNo, &p.Description, &p.PartNo, &p.Bin, &p.CostCenter,
		&p.MachineTypeID, &p.MachineType, &p.Price, &p.Stock,
		&p.SafetyStock, &p.SafetyStockCheck, &p.ImportDate, &p.ExportDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserta un repuesto. material_no duplicado retorna ErrDuplicate.
func (r *SparePartRepo) Create(part *entity.SparePart) error {
	query := `
		INSERT INTO spare_parts (
			material_no, description, part_no, bin, cost_center, machine_type_id,
			price, stock, safety_stock, safety_stock_check, import_date, export_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		part.MaterialNo, part.Description, part.PartNo, part.Bin, part.CostCenter,
		part.MachineTypeID, part.Price, part.Stock, part.SafetyStock,
		part.SafetyStockCheck, part.ImportDate, part.ExportDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("create spare part: %w", err)
	}
	return nil
}

// GetByMaterialNo obtiene un repuesto por su material_no. Retorna (nil, nil) si no existe.
func (r *SparePartRepo) GetByMaterialNo(materialNo string) (*entity.SparePart, error) {
	query := `
		SELECT ` + sparePartColumns + `
		FROM spare_parts p
		LEFT JOIN machine_types mt ON mt.id = p.machine_type_id
		WHERE p.material_no = $1`
	p, err := scanSparePart(r.q.QueryRow(context.Background(), query, materialNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el repuesto y bloquea la fila (SELECT FOR UPDATE) para
// serializar movimientos y ediciones concurrentes. Retorna (nil, nil) si no existe.
func (r *SparePartRepo) GetForUpdate(materialNo string) (*entity.SparePart, error) {
	// FOR UPDATE no admite el LEFT JOIN; el nombre del tipo se resuelve aparte si hace falta.
	query := `
		SELECT material_no, description, part_no, bin, cost_center,
		       machine_type_id, '', price, stock,
		       safety_stock, safety_stock_check, import_date, export_date,
		       created_at, updated_at
		FROM spare_parts
		WHERE material_no = $1
		FOR UPDATE`
	p, err := scanSparePart(r.q.QueryRow(context.Background(), query, materialNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part for update: %w", err)
	}
	return p, nil
}

// UpdateStock fija el stock y sella la fecha derivada según la dirección del movimiento.
func (r *SparePartRepo) UpdateStock(materialNo string, stock int64, flag string, movedAt time.Time) error {
	dateColumn := "import_date"
	if flag == entity.FlagExport {
		dateColumn = "export_date"
	}
	query := fmt.Sprintf(`
		UPDATE spare_parts
		SET stock = $1, %s = $2, updated_at = now()
		WHERE material_no = $3`, dateColumn)
	tag, err := r.q.Exec(context.Background(), query, stock, movedAt, materialNo)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update sobrescribe todos los campos editables del repuesto, incluido el stock.
func (r *SparePartRepo) Update(part *entity.SparePart) error {
	query := `
		UPDATE spare_parts
		SET description = $1, part_no = $2, bin = $3, cost_center = $4,
		    machine_type_id = $5, price = $6, stock = $7,
		    safety_stock = $8, safety_stock_check = $9, updated_at = now()
		WHERE material_no = $10`
	tag, err := r.q.Exec(context.Background(), query,
		part.Description, part.PartNo, part.Bin, part.CostCenter,
		part.MachineTypeID, part.Price, part.Stock,
		part.SafetyStock, part.SafetyStockCheck, part.MaterialNo,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("update spare part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve repuestos aplicando los filtros con condiciones AND dinámicas.
func (r *SparePartRepo) List(filter repository.PartFilter) ([]*entity.SparePart, error) {
	query := `
		SELECT ` + sparePartColumns + `
		FROM spare_parts p
		LEFT JOIN machine_types mt ON mt.id = p.machine_type_id
		WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Keyword != "" {
		query += fmt.Sprintf(` AND (p.material_no ILIKE $%d OR p.description ILIKE $%d OR p.bin ILIKE $%d OR p.cost_center ILIKE $%d)`,
			argPos, argPos, argPos, argPos)
		args = append(args, "%"+filter.Keyword+"%")
		argPos++
	}
	if filter.MinStock != nil {
		query += fmt.Sprintf(` AND p.stock >= $%d`, argPos)
		args = append(args, *filter.MinStock)
		argPos++
	}
	if filter.MaxStock != nil {
		query += fmt.Sprintf(` AND p.stock <= $%d`, argPos)
		args = append(args, *filter.MaxStock)
		argPos++
	}
	if filter.MachineTypeID != nil {
		query += fmt.Sprintf(` AND p.machine_type_id = $%d`, argPos)
		args = append(args, *filter.MachineTypeID)
		argPos++
	}

	query += ` ORDER BY p.material_no`
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
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	defer rows.Close()

	var parts []*entity.SparePart
	for rows.Next() {
		p, err := scanSparePart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// ListBelowSafetyStock devuelve los repuestos con verificación activada cuyo
// stock está por debajo del stock de seguridad.
func (r *SparePartRepo) ListBelowSafetyStock() ([]*entity.SparePart, error) {
	query := `
		SELECT ` + sparePartColumns + `
		FROM spare_parts p
		LEFT JOIN machine_types mt ON mt.id = p.machine_type_id
		WHERE p.safety_stock_check AND p.stock < p.safety_stock
		ORDER BY p.material_no`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list below safety stock: %w", err)
	}
	defer rows.Close()

	var parts []*entity.SparePart
	for rows.Next() {
		p, err := scanSparePart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}
