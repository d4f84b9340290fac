package repository

import (
	"time"

	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
)

// MovementFilter filtros de listado del log de movimientos.
type MovementFilter struct {
	PartID     string
	EmployeeID string
	Flag       string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// DayTotal suma de cantidades de un día.
type DayTotal struct {
	Day   time.Time
	Total int64
}

// PartTotal suma de cantidades de un repuesto.
type PartTotal struct {
	PartID      string
	Description string
	Total       int64
}

// MovementRepository define el puerto de persistencia del log de movimientos.
// El log es append-only: no existe Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(filter MovementFilter) ([]*entity.Movement, error)
	// AggregateByDay agrupa cantidades por día para una dirección, en un rango opcional.
	AggregateByDay(flag string, from, to *time.Time) ([]DayTotal, error)
	// AggregateByPart agrupa cantidades por repuesto para una dirección, en un rango opcional.
	AggregateByPart(flag string, from, to *time.Time) ([]PartTotal, error)
	// TotalByFlag suma todas las cantidades registradas con la dirección dada.
	TotalByFlag(flag string) (int64, error)
}
