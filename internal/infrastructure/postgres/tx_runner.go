package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/warehouse-mro/internal/application/ledger"
	"github.com/tu-usuario/warehouse-mro/internal/application/movement"
	"github.com/tu-usuario/warehouse-mro/internal/application/usecase"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// Ensure TxRunner implements the application tx ports.
var _ movement.TxRunner = (*TxRunner)(nil)
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ usecase.MachineTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	parts repository.SparePartRepository,
	movements repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	parts := NewSparePartRepository(tx)
	movements := NewMovementRepository(tx)

	if err := fn(parts, movements); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMachines inicia una transacción con el repo de máquinas (alta de máquina + posición).
func (r *TxRunner) RunMachines(ctx context.Context, fn func(
	machines repository.MachineRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMachineRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
