package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
)

// CreatePartRequest body para POST /api/parts.
type CreatePartRequest struct {
	MaterialNo       string          `json:"material_no"`
	Description      string          `json:"description"`
	PartNo           string          `json:"part_no,omitempty"`
	Bin              string          `json:"bin,omitempty"`
	CostCenter       string          `json:"cost_center,omitempty"`
	MachineTypeID    int64           `json:"machine_type_id"`
	Price            decimal.Decimal `json:"price"`
	InitialStock     int64           `json:"initial_stock"`
	SafetyStock      int64           `json:"safety_stock"`
	SafetyStockCheck bool            `json:"safety_stock_check"`
	EmployeeID       string          `json:"employee_id,omitempty"`
}

// EditPartRequest body para PUT /api/parts/:material_no. Sobrescritura
// administrativa completa; no pasa por el log de movimientos.
type EditPartRequest struct {
	Description      string          `json:"description"`
	PartNo           string          `json:"part_no,omitempty"`
	Bin              string          `json:"bin,omitempty"`
	CostCenter       string          `json:"cost_center,omitempty"`
	MachineTypeID    int64           `json:"machine_type_id"`
	Price            decimal.Decimal `json:"price"`
	Stock            int64           `json:"stock"`
	SafetyStock      int64           `json:"safety_stock"`
	SafetyStockCheck bool            `json:"safety_stock_check"`
}

// PartResponse representación de un repuesto en respuestas.
type PartResponse struct {
	MaterialNo       string          `json:"material_no"`
	Description      string          `json:"description"`
	PartNo           string          `json:"part_no,omitempty"`
	Bin              string          `json:"bin,omitempty"`
	CostCenter       string          `json:"cost_center,omitempty"`
	MachineTypeID    int64           `json:"machine_type_id"`
	MachineType      string          `json:"machine_type,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Stock            int64           `json:"stock"`
	SafetyStock      int64           `json:"safety_stock"`
	SafetyStockCheck bool            `json:"safety_stock_check"`
	BelowSafetyStock bool            `json:"below_safety_stock"`
	StorageDays      int64           `json:"storage_days"`
	StockValue       decimal.Decimal `json:"stock_value"`
	ImportDate       *time.Time      `json:"import_date,omitempty"`
	ExportDate       *time.Time      `json:"export_date,omitempty"`
}

// PartToResponse mapea la entidad al DTO de respuesta, calculando derivados.
func PartToResponse(p *entity.SparePart, now time.Time) PartResponse {
	return PartResponse{
		MaterialNo:       p.MaterialNo,
		Description:      p.Description,
		PartNo:           p.PartNo,
		Bin:              p.Bin,
		CostCenter:       p.CostCenter,
		MachineTypeID:    p.MachineTypeID,
		MachineType:      p.MachineType,
		Price:            p.Price,
		Stock:            p.Stock,
		SafetyStock:      p.SafetyStock,
		SafetyStockCheck: p.SafetyStockCheck,
		BelowSafetyStock: p.BelowSafetyStock(),
		StorageDays:      p.StorageDays(now),
		StockValue:       p.StockValue().Round(2),
		ImportDate:       p.ImportDate,
		ExportDate:       p.ExportDate,
	}
}
