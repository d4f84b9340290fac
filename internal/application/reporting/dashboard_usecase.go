// Package reporting contiene los casos de uso de solo lectura para el
// dashboard de almacén y los agregados del log de movimientos.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/warehouse-mro/internal/application/dto"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

const dashboardTopParts = 10 // número de repuestos en el widget de mayor valor

// DashboardUseCase genera el resumen del almacén: inventario y valor totales,
// totales históricos de entradas/salidas y top de repuestos por valor.
//
// Fuente de datos: AnalyticsRepository y MovementRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	movementRepo  repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, movementRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, movementRepo: movementRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. GetStockTotals            → TotalUnits + TotalValue
//  2. TotalByFlag(IMPORT)       → TotalImported
//  3. TotalByFlag(EXPORT)       → TotalExported
//  4. GetTopPartsByValue(10)    → TopByValue
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type totalsResult struct {
		totals repository.StockTotals
		err    error
	}
	type flagResult struct {
		total int64
		err   error
	}
	type topResult struct {
		parts []repository.PartValue
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	importCh := make(chan flagResult, 1)
	exportCh := make(chan flagResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		totals, err := uc.analyticsRepo.GetStockTotals(ctx)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		total, err := uc.movementRepo.TotalByFlag(entity.FlagImport)
		importCh <- flagResult{total, err}
	}()
	go func() {
		total, err := uc.movementRepo.TotalByFlag(entity.FlagExport)
		exportCh <- flagResult{total, err}
	}()
	go func() {
		parts, err := uc.analyticsRepo.GetTopPartsByValue(ctx, dashboardTopParts)
		topCh <- topResult{parts, err}
	}()

	totals := <-totalsCh
	imports := <-importCh
	exports := <-exportCh
	top := <-topCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de stock: %w", totals.err)
	}
	if imports.err != nil {
		return nil, fmt.Errorf("dashboard: total de entradas: %w", imports.err)
	}
	if exports.err != nil {
		return nil, fmt.Errorf("dashboard: total de salidas: %w", exports.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top por valor: %w", top.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalUnits:    totals.totals.Units,
		TotalValue:    totals.totals.Value.Round(2),
		TotalImported: imports.total,
		TotalExported: exports.total,
	}
	for _, p := range top.parts {
		summary.TopByValue = append(summary.TopByValue, dto.PartValueDTO{
			MaterialNo:  p.PartID,
			Description: p.Description,
			Stock:       p.Stock,
			Price:       p.Price,
			Value:       p.Value.Round(2),
		})
	}
	return summary, nil
}

// Agrupaciones soportadas por GetAggregates.
const (
	GroupByDay  = "day"
	GroupByPart = "part"
)

// GetAggregates devuelve sumas de cantidad por día o por repuesto para una
// dirección, en un rango opcional de fechas. Lectura pura: dos llamadas con
// los mismos argumentos sin escrituras intermedias devuelven lo mismo.
func (uc *DashboardUseCase) GetAggregates(ctx context.Context, flag, group string, from, to *time.Time) (*dto.MovementAggregatesDTO, error) {
	if flag != entity.FlagImport && flag != entity.FlagExport {
		return nil, domain.ErrInvalidInput
	}
	out := &dto.MovementAggregatesDTO{Flag: flag, Group: group}
	switch group {
	case GroupByDay:
		rows, err := uc.movementRepo.AggregateByDay(flag, from, to)
		if err != nil {
			return nil, fmt.Errorf("agregado por día: %w", err)
		}
		for _, r := range rows {
			out.ByDay = append(out.ByDay, dto.DayTotalDTO{Day: r.Day.Format("2006-01-02"), Total: r.Total})
		}
	case GroupByPart:
		rows, err := uc.movementRepo.AggregateByPart(flag, from, to)
		if err != nil {
			return nil, fmt.Errorf("agregado por repuesto: %w", err)
		}
		for _, r := range rows {
			out.ByPart = append(out.ByPart, dto.PartTotalDTO{MaterialNo: r.PartID, Description: r.Description, Total: r.Total})
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	return out, nil
}
