package repository

import (
	"time"

	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
)

// PartFilter filtros de listado de repuestos; todas las condiciones se combinan con AND.
type PartFilter struct {
	Keyword       string // match parcial sobre material_no, description, bin y cost_center
	MinStock      *int64
	MaxStock      *int64
	MachineTypeID *int64
	Limit         int
	Offset        int
}

// SparePartRepository define el puerto de persistencia para SparePart (DIP).
type SparePartRepository interface {
	Create(part *entity.SparePart) error
	GetByMaterialNo(materialNo string) (*entity.SparePart, error)
	// GetForUpdate bloquea la fila del repuesto (SELECT FOR UPDATE) para
	// serializar movimientos y ediciones concurrentes sobre el mismo material_no.
	GetForUpdate(materialNo string) (*entity.SparePart, error)
	// UpdateStock fija el stock y sella la fecha derivada de la dirección dada
	// (import_date o export_date). Usar solo dentro de una transacción.
	UpdateStock(materialNo string, stock int64, flag string, movedAt time.Time) error
	// Update sobrescribe todos los campos editables, incluido el stock.
	// Camino administrativo: no pasa por el log de movimientos.
	Update(part *entity.SparePart) error
	List(filter PartFilter) ([]*entity.SparePart, error)
	// ListBelowSafetyStock devuelve los repuestos con verificación activada
	// cuyo stock está por debajo del stock de seguridad.
	ListBelowSafetyStock() ([]*entity.SparePart, error)
}
