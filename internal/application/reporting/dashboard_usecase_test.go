package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-mro/internal/application/reporting"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

type fakeAnalytics struct {
	totals repository.StockTotals
	top    []repository.PartValue
}

func (f *fakeAnalytics) GetStockTotals(ctx context.Context) (repository.StockTotals, error) {
	return f.totals, nil
}

func (f *fakeAnalytics) GetTopPartsByValue(ctx context.Context, limit int) ([]repository.PartValue, error) {
	if limit < len(f.top) {
		return f.top[:limit], nil
	}
	return f.top, nil
}

type fakeMovements struct {
	movements []*entity.Movement
}

func (f *fakeMovements) Create(*entity.Movement) error { return nil }
func (f *fakeMovements) List(repository.MovementFilter) ([]*entity.Movement, error) {
	return f.movements, nil
}

func (f *fakeMovements) AggregateByDay(flag string, from, to *time.Time) ([]repository.DayTotal, error) {
	byDay := make(map[time.Time]int64)
	var order []time.Time
	for _, m := range f.movements {
		if m.Flag != flag {
			continue
		}
		day := m.CreatedAt.Truncate(24 * time.Hour)
		if _, ok := byDay[day]; !ok {
			order = append(order, day)
		}
		byDay[day] += m.Quantity
	}
	var out []repository.DayTotal
	for _, day := range order {
		out = append(out, repository.DayTotal{Day: day, Total: byDay[day]})
	}
	return out, nil
}

func (f *fakeMovements) AggregateByPart(flag string, from, to *time.Time) ([]repository.PartTotal, error) {
	byPart := make(map[string]int64)
	var order []string
	for _, m := range f.movements {
		if m.Flag != flag {
			continue
		}
		if _, ok := byPart[m.PartID]; !ok {
			order = append(order, m.PartID)
		}
		byPart[m.PartID] += m.Quantity
	}
	var out []repository.PartTotal
	for _, partID := range order {
		out = append(out, repository.PartTotal{PartID: partID, Total: byPart[partID]})
	}
	return out, nil
}

func (f *fakeMovements) TotalByFlag(flag string) (int64, error) {
	var total int64
	for _, m := range f.movements {
		if m.Flag == flag {
			total += m.Quantity
		}
	}
	return total, nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestGetSummary(t *testing.T) {
	analytics := &fakeAnalytics{
		totals: repository.StockTotals{Units: 120, Value: decimal.NewFromFloat(1530.559)},
		top: []repository.PartValue{
			{PartID: "M-1", Description: "rodamiento", Stock: 40, Price: decimal.NewFromInt(25), Value: decimal.NewFromInt(1000)},
			{PartID: "M-2", Description: "correa", Stock: 80, Price: decimal.NewFromFloat(6.63), Value: decimal.NewFromFloat(530.559)},
		},
	}
	movements := &fakeMovements{movements: []*entity.Movement{
		{PartID: "M-1", Quantity: 100, Flag: entity.FlagImport, CreatedAt: day("2026-08-01")},
		{PartID: "M-2", Quantity: 90, Flag: entity.FlagImport, CreatedAt: day("2026-08-02")},
		{PartID: "M-1", Quantity: 60, Flag: entity.FlagExport, CreatedAt: day("2026-08-02")},
		{PartID: "M-2", Quantity: 10, Flag: entity.FlagExport, CreatedAt: day("2026-08-03")},
	}}

	uc := reporting.NewDashboardUseCase(analytics, movements)
	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), summary.TotalUnits)
	assert.True(t, summary.TotalValue.Equal(decimal.NewFromFloat(1530.56)), "el valor total se redondea a 2 decimales")
	assert.Equal(t, int64(190), summary.TotalImported)
	assert.Equal(t, int64(70), summary.TotalExported)
	require.Len(t, summary.TopByValue, 2)
	assert.Equal(t, "M-1", summary.TopByValue[0].MaterialNo)
}

func TestGetAggregates_PorDia(t *testing.T) {
	movements := &fakeMovements{movements: []*entity.Movement{
		{PartID: "M-1", Quantity: 5, Flag: entity.FlagExport, CreatedAt: day("2026-08-01")},
		{PartID: "M-2", Quantity: 3, Flag: entity.FlagExport, CreatedAt: day("2026-08-01")},
		{PartID: "M-1", Quantity: 7, Flag: entity.FlagExport, CreatedAt: day("2026-08-02")},
		{PartID: "M-1", Quantity: 99, Flag: entity.FlagImport, CreatedAt: day("2026-08-01")},
	}}
	uc := reporting.NewDashboardUseCase(&fakeAnalytics{}, movements)

	out, err := uc.GetAggregates(context.Background(), entity.FlagExport, reporting.GroupByDay, nil, nil)
	require.NoError(t, err)

	require.Len(t, out.ByDay, 2)
	assert.Equal(t, "2026-08-01", out.ByDay[0].Day)
	assert.Equal(t, int64(8), out.ByDay[0].Total)
	assert.Equal(t, int64(7), out.ByDay[1].Total)
	assert.Empty(t, out.ByPart)
}

func TestGetAggregates_PorRepuesto(t *testing.T) {
	movements := &fakeMovements{movements: []*entity.Movement{
		{PartID: "M-1", Quantity: 5, Flag: entity.FlagExport, CreatedAt: day("2026-08-01")},
		{PartID: "M-1", Quantity: 7, Flag: entity.FlagExport, CreatedAt: day("2026-08-02")},
		{PartID: "M-2", Quantity: 3, Flag: entity.FlagExport, CreatedAt: day("2026-08-01")},
	}}
	uc := reporting.NewDashboardUseCase(&fakeAnalytics{}, movements)

	out, err := uc.GetAggregates(context.Background(), entity.FlagExport, reporting.GroupByPart, nil, nil)
	require.NoError(t, err)

	require.Len(t, out.ByPart, 2)
	assert.Equal(t, int64(12), out.ByPart[0].Total)
	assert.Equal(t, int64(3), out.ByPart[1].Total)
}

// Lectura pura: la misma consulta repetida sin escrituras da el mismo resultado.
func TestGetAggregates_Idempotente(t *testing.T) {
	movements := &fakeMovements{movements: []*entity.Movement{
		{PartID: "M-1", Quantity: 5, Flag: entity.FlagExport, CreatedAt: day("2026-08-01")},
	}}
	uc := reporting.NewDashboardUseCase(&fakeAnalytics{}, movements)
	ctx := context.Background()

	first, err := uc.GetAggregates(ctx, entity.FlagExport, reporting.GroupByDay, nil, nil)
	require.NoError(t, err)
	second, err := uc.GetAggregates(ctx, entity.FlagExport, reporting.GroupByDay, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetAggregates_ParametrosInvalidos(t *testing.T) {
	uc := reporting.NewDashboardUseCase(&fakeAnalytics{}, &fakeMovements{})
	ctx := context.Background()

	_, err := uc.GetAggregates(ctx, "TRANSFER", reporting.GroupByDay, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetAggregates(ctx, entity.FlagExport, "week", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
