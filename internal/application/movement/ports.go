package movement

import (
	"context"

	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad ledger + log:
// o se aplican el delta de stock y el registro del movimiento, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parts repository.SparePartRepository,
		movements repository.MovementRepository,
	) error) error
}

// StockAlertNotifier notifica salidas que dejan un repuesto bajo su stock de
// seguridad. La notificación es best-effort: nunca bloquea ni revierte el movimiento.
type StockAlertNotifier interface {
	NotifyLowStock(ctx context.Context, part *entity.SparePart) error
}
