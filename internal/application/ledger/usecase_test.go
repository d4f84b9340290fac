package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-mro/internal/application/ledger"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type ledgerStore struct {
	parts     map[string]*entity.SparePart
	movements []*entity.Movement
	employees map[string]*entity.Employee
	types     map[int64]*entity.MachineType
}

func newLedgerStore() *ledgerStore {
	return &ledgerStore{
		parts:     make(map[string]*entity.SparePart),
		employees: make(map[string]*entity.Employee),
		types:     make(map[int64]*entity.MachineType),
	}
}

type partRepo struct{ s *ledgerStore }

func (r *partRepo) Create(part *entity.SparePart) error {
	if _, ok := r.s.parts[part.MaterialNo]; ok {
		return domain.ErrDuplicate
	}
	cp := *part
	r.s.parts[part.MaterialNo] = &cp
	return nil
}

func (r *partRepo) GetByMaterialNo(materialNo string) (*entity.SparePart, error) {
	p, ok := r.s.parts[materialNo]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *partRepo) GetForUpdate(materialNo string) (*entity.SparePart, error) {
	return r.GetByMaterialNo(materialNo)
}

func (r *partRepo) UpdateStock(materialNo string, stock int64, flag string, movedAt time.Time) error {
	p, ok := r.s.parts[materialNo]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *partRepo) Update(part *entity.SparePart) error {
	if _, ok := r.s.parts[part.MaterialNo]; !ok {
		return domain.ErrNotFound
	}
	cp := *part
	r.s.parts[part.MaterialNo] = &cp
	return nil
}

func (r *partRepo) List(filter repository.PartFilter) ([]*entity.SparePart, error) {
	var out []*entity.SparePart
	for _, p := range r.s.parts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *partRepo) ListBelowSafetyStock() ([]*entity.SparePart, error) {
	var out []*entity.SparePart
	for _, p := range r.s.parts {
		if p.BelowSafetyStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type movementRepo struct{ s *ledgerStore }

func (r *movementRepo) Create(m *entity.Movement) error {
	m.ID = int64(len(r.s.movements) + 1)
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *movementRepo) List(repository.MovementFilter) ([]*entity.Movement, error) {
	return r.s.movements, nil
}
func (r *movementRepo) AggregateByDay(string, *time.Time, *time.Time) ([]repository.DayTotal, error) {
	return nil, nil
}
func (r *movementRepo) AggregateByPart(string, *time.Time, *time.Time) ([]repository.PartTotal, error) {
	return nil, nil
}
func (r *movementRepo) TotalByFlag(string) (int64, error) { return 0, nil }

type employeeRepo struct{ s *ledgerStore }

func (r *employeeRepo) Create(*entity.Employee) error { return nil }
func (r *employeeRepo) GetByID(amannID string) (*entity.Employee, error) {
	e, ok := r.s.employees[amannID]
	if !ok {
		return nil, nil
	}
	return e, nil
}
func (r *employeeRepo) Update(*entity.Employee) error { return nil }
func (r *employeeRepo) List(repository.EmployeeFilter) ([]*entity.Employee, error) {
	return nil, nil
}

type machineRepo struct{ s *ledgerStore }

func (r *machineRepo) ListTypes() ([]*entity.MachineType, error) { return nil, nil }
func (r *machineRepo) GetTypeByID(id int64) (*entity.MachineType, error) {
	t, ok := r.s.types[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}
func (r *machineRepo) ListGroups() ([]*entity.MachineGroup, error)      { return nil, nil }
func (r *machineRepo) GetGroupByID(int64) (*entity.MachineGroup, error) { return nil, nil }
func (r *machineRepo) CreateMachine(*entity.Machine) error              { return nil }
func (r *machineRepo) ListMachines(repository.MachineFilter) ([]*entity.Machine, error) {
	return nil, nil
}
func (r *machineRepo) CreatePosition(*entity.MachinePosition) error { return nil }
func (r *machineRepo) GetPositionByID(int64) (*entity.MachinePosition, error) {
	return nil, nil
}
func (r *machineRepo) ListPositionsByMachine(int64) ([]*entity.MachinePosition, error) {
	return nil, nil
}

type txRunner struct{ s *ledgerStore }

func (r *txRunner) Run(ctx context.Context, fn func(
	parts repository.SparePartRepository,
	movements repository.MovementRepository,
) error) error {
	snapParts := make(map[string]*entity.SparePart, len(r.s.parts))
	for k, v := range r.s.parts {
		cp := *v
		snapParts[k] = &cp
	}
	snapMovs := make([]*entity.Movement, len(r.s.movements))
	copy(snapMovs, r.s.movements)

	if err := fn(&partRepo{r.s}, &movementRepo{r.s}); err != nil {
		r.s.parts = snapParts
		r.s.movements = snapMovs
		return err
	}
	return nil
}

func newTestLedger(t *testing.T) (*ledger.PartLedgerUseCase, *ledgerStore) {
	t.Helper()
	store := newLedgerStore()
	store.employees["A-001"] = &entity.Employee{AmannID: "A-001", Name: "Tran Thi B", Active: true}
	store.types[1] = &entity.MachineType{ID: 1, Machine: "bordadora"}

	uc := ledger.NewPartLedgerUseCase(
		&txRunner{store},
		&partRepo{store},
		&employeeRepo{store},
		&machineRepo{store},
	)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// CreatePart
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePart_SinStockInicial(t *testing.T) {
	uc, store := newTestLedger(t)

	part, err := uc.CreatePart(context.Background(), ledger.CreatePartInput{
		MaterialNo:    "M-100",
		Description:   "rodamiento 6204",
		MachineTypeID: 1,
		Price:         decimal.NewFromFloat(12.50),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), part.Stock)
	assert.Nil(t, part.ImportDate, "sin stock inicial no hay fecha de entrada")
	assert.Empty(t, store.movements, "sin stock inicial no hay entrada sintética")
}

func TestCreatePart_StockInicialSiembraLog(t *testing.T) {
	uc, store := newTestLedger(t)

	part, err := uc.CreatePart(context.Background(), ledger.CreatePartInput{
		MaterialNo:    "M-100",
		Description:   "rodamiento 6204",
		MachineTypeID: 1,
		Price:         decimal.NewFromFloat(12.50),
		InitialStock:  25,
		EmployeeID:    "A-001",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25), part.Stock)
	assert.NotNil(t, part.ImportDate)
	require.Len(t, store.movements, 1, "el alta con stock siembra una entrada en el log")
	mov := store.movements[0]
	assert.Equal(t, entity.FlagImport, mov.Flag)
	assert.Equal(t, int64(25), mov.Quantity)
	assert.Equal(t, entity.ReasonInitialStock, mov.Reason)
	assert.Equal(t, "A-001", mov.EmployeeID)
}

func TestCreatePart_Duplicado(t *testing.T) {
	uc, _ := newTestLedger(t)
	ctx := context.Background()
	in := ledger.CreatePartInput{
		MaterialNo: "M-100", Description: "rodamiento", MachineTypeID: 1,
	}

	_, err := uc.CreatePart(ctx, in)
	require.NoError(t, err)
	_, err = uc.CreatePart(ctx, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreatePart_Validaciones(t *testing.T) {
	uc, store := newTestLedger(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input ledger.CreatePartInput
		want  error
	}{
		{"sin material_no", ledger.CreatePartInput{
			Description: "x", MachineTypeID: 1}, domain.ErrInvalidInput},
		{"sin descripción", ledger.CreatePartInput{
			MaterialNo: "M-1", MachineTypeID: 1}, domain.ErrInvalidInput},
		{"stock inicial negativo", ledger.CreatePartInput{
			MaterialNo: "M-1", Description: "x", MachineTypeID: 1, InitialStock: -1}, domain.ErrInvalidInput},
		{"precio negativo", ledger.CreatePartInput{
			MaterialNo: "M-1", Description: "x", MachineTypeID: 1,
			Price: decimal.NewFromInt(-3)}, domain.ErrInvalidInput},
		{"tipo de máquina inexistente", ledger.CreatePartInput{
			MaterialNo: "M-1", Description: "x", MachineTypeID: 99}, domain.ErrInvalidReference},
		{"stock inicial sin empleado", ledger.CreatePartInput{
			MaterialNo: "M-1", Description: "x", MachineTypeID: 1, InitialStock: 5}, domain.ErrInvalidInput},
		{"stock inicial con empleado inexistente", ledger.CreatePartInput{
			MaterialNo: "M-1", Description: "x", MachineTypeID: 1, InitialStock: 5,
			EmployeeID: "NADIE"}, domain.ErrInvalidReference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreatePart(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, store.parts, "ningún caso inválido debe crear el repuesto")
}

// ──────────────────────────────────────────────────────────────────────────────
// EditPart
// ──────────────────────────────────────────────────────────────────────────────

func TestEditPart_SobrescribeSinRegistrarMovimiento(t *testing.T) {
	uc, store := newTestLedger(t)
	ctx := context.Background()

	_, err := uc.CreatePart(ctx, ledger.CreatePartInput{
		MaterialNo: "M-100", Description: "rodamiento", MachineTypeID: 1,
		InitialStock: 10, EmployeeID: "A-001",
	})
	require.NoError(t, err)
	logLen := len(store.movements)

	part, err := uc.EditPart(ctx, "M-100", ledger.EditPartInput{
		Description:      "rodamiento 6204 ZZ",
		MachineTypeID:    1,
		Price:            decimal.NewFromFloat(15.75),
		Stock:            42,
		SafetyStock:      5,
		SafetyStockCheck: true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), part.Stock, "la edición fija el stock tal cual")
	assert.Equal(t, "rodamiento 6204 ZZ", part.Description)
	assert.Len(t, store.movements, logLen, "la edición administrativa no pasa por el log")
}

func TestEditPart_NoExiste(t *testing.T) {
	uc, _ := newTestLedger(t)

	_, err := uc.EditPart(context.Background(), "M-999", ledger.EditPartInput{
		Description: "x", MachineTypeID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditPart_StockNegativo(t *testing.T) {
	uc, _ := newTestLedger(t)

	_, err := uc.EditPart(context.Background(), "M-100", ledger.EditPartInput{
		Description: "x", MachineTypeID: 1, Stock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_NoExiste(t *testing.T) {
	uc, _ := newTestLedger(t)
	_, err := uc.Get(context.Background(), "M-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltroStockNegativo(t *testing.T) {
	uc, _ := newTestLedger(t)
	bad := int64(-1)
	_, err := uc.List(context.Background(), repository.PartFilter{MinStock: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListBelowSafetyStock(t *testing.T) {
	uc, store := newTestLedger(t)
	store.parts["M-1"] = &entity.SparePart{
		MaterialNo: "M-1", Stock: 2, SafetyStock: 5, SafetyStockCheck: true,
	}
	store.parts["M-2"] = &entity.SparePart{
		MaterialNo: "M-2", Stock: 2, SafetyStock: 5, SafetyStockCheck: false,
	}

	parts, err := uc.ListBelowSafetyStock(context.Background())
	require.NoError(t, err)
	require.Len(t, parts, 1, "solo cuenta con la verificación activada")
	assert.Equal(t, "M-1", parts[0].MaterialNo)
}
