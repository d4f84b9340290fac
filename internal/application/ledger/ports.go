package ledger

import (
	"context"

	"github.com/tu-usuario/warehouse-mro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El alta de repuesto con stock inicial escribe
// la fila del catálogo y la entrada sintética del log en la misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parts repository.SparePartRepository,
		movements repository.MovementRepository,
	) error) error
}
