package dto

import "github.com/shopspring/decimal"

// PartValueDTO repuesto con su valor de inventario (widget top del dashboard).
type PartValueDTO struct {
	MaterialNo  string          `json:"material_no"`
	Description string          `json:"description"`
	Stock       int64           `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Value       decimal.Decimal `json:"value"`
}

// DashboardSummaryDTO resumen del almacén para GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalUnits    int64           `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalImported int64           `json:"total_imported"`
	TotalExported int64           `json:"total_exported"`
	TopByValue    []PartValueDTO  `json:"top_by_value"`
}

// DayTotalDTO suma de cantidades de un día.
type DayTotalDTO struct {
	Day   string `json:"day"`
	Total int64  `json:"total"`
}

// PartTotalDTO suma de cantidades de un repuesto.
type PartTotalDTO struct {
	MaterialNo  string `json:"material_no"`
	Description string `json:"description"`
	Total       int64  `json:"total"`
}

// MovementAggregatesDTO respuesta de GET /api/movements/aggregate.
type MovementAggregatesDTO struct {
	Flag   string         `json:"flag"`
	Group  string         `json:"group"`
	ByDay  []DayTotalDTO  `json:"by_day,omitempty"`
	ByPart []PartTotalDTO `json:"by_part,omitempty"`
}
