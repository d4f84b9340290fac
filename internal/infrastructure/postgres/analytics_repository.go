package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetStockTotals devuelve las unidades totales y el valor total del inventario.
func (r *AnalyticsRepo) GetStockTotals(ctx context.Context) (repository.StockTotals, error) {
	var totals repository.StockTotals
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(stock), 0)::bigint, COALESCE(SUM(stock * price), 0)
		FROM spare_parts`,
	).Scan(&totals.Units, &totals.Value)
	if err != nil {
		return repository.StockTotals{}, fmt.Errorf("get stock totals: %w", err)
	}
	return totals, nil
}

// GetTopPartsByValue devuelve los repuestos con mayor valor de inventario.
func (r *AnalyticsRepo) GetTopPartsByValue(ctx context.Context, limit int) ([]repository.PartValue, error) {
	rows, err := r.q.Query(ctx, `
		SELECT material_no, description, stock, price, stock * price AS value
		FROM spare_parts
		ORDER BY value DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("get top parts by value: %w", err)
	}
	defer rows.Close()

	var parts []repository.PartValue
	for rows.Next() {
		var p repository.PartValue
		if err := rows.Scan(&p.PartID, &p.Description, &p.Stock, &p.Price, &p.Value); err != nil {
			return nil, fmt.Errorf("scan part value: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}
