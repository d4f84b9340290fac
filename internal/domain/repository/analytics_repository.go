package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockTotals totales globales del inventario.
type StockTotals struct {
	Units int64           // suma de stock de todos los repuestos
	Value decimal.Decimal // suma de stock × precio
}

// PartValue valor de inventario de un repuesto.
type PartValue struct {
	PartID      string
	Description string
	Stock       int64
	Price       decimal.Decimal
	Value       decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	GetStockTotals(ctx context.Context) (StockTotals, error)
	// GetTopPartsByValue devuelve los `limit` repuestos con mayor valor de inventario.
	GetTopPartsByValue(ctx context.Context, limit int) ([]PartValue, error)
}
