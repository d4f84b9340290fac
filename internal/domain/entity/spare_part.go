package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SparePart representa un repuesto del almacén, identificado por su material_no.
// Stock es la cantidad actual en bodega; se modifica únicamente vía movimientos
// o por edición administrativa explícita (EditPart).
type SparePart struct {
	MaterialNo       string
	Description      string
	PartNo           string
	Bin              string
	CostCenter       string
	MachineTypeID    int64
	MachineType      string // nombre del tipo de máquina (join en listados)
	Price            decimal.Decimal
	Stock            int64
	SafetyStock      int64
	SafetyStockCheck bool
	ImportDate       *time.Time // última entrada (derivado)
	ExportDate       *time.Time // última salida (derivado)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StorageDays devuelve los días que el repuesto lleva en bodega: desde la
// última entrada hasta la última salida, o hasta hoy si no ha salido.
func (p *SparePart) StorageDays(now time.Time) int64 {
	if p.ImportDate == nil {
		return 0
	}
	end := now
	if p.ExportDate != nil {
		end = *p.ExportDate
	}
	days := int64(end.Sub(*p.ImportDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// StockValue devuelve el valor del stock actual (stock × precio).
func (p *SparePart) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Stock))
}

// BelowSafetyStock indica si el repuesto está bajo su stock de seguridad
// (solo cuando la verificación está activada).
func (p *SparePart) BelowSafetyStock() bool {
	return p.SafetyStockCheck && p.Stock < p.SafetyStock
}
