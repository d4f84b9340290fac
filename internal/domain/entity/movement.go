package entity

import "time"

// Dirección de un movimiento de almacén.
const (
	FlagImport = "IMPORT" // entrada a bodega
	FlagExport = "EXPORT" // salida de bodega
)

// Razones fijas usadas por el sistema.
const (
	ReasonInitialStock = "initial stock" // entrada sintética al crear un repuesto
	ReasonFOC          = "FOC"           // salida free-of-charge (no descuenta stock)
)

// Movement es un registro inmutable del log de movimientos (append-only).
// ID lo asigna la base de datos en la inserción y define el orden del log.
// Quantity es siempre positiva; la dirección la da Flag.
type Movement struct {
	ID            int64
	TransactionID string // agrupa movimientos de una misma operación
	PartID        string // material_no del repuesto
	Quantity      int64
	Flag          string
	EmployeeID    string
	MachinePosID  *int64 // posición de máquina, solo en salidas por consumo
	Reason        string
	IsFOC         bool
	CreatedAt     time.Time
}

// StockDelta devuelve el efecto del movimiento sobre el stock:
// entrada +Quantity, salida -Quantity, salida FOC 0.
func (m *Movement) StockDelta() int64 {
	switch {
	case m.Flag == FlagImport:
		return m.Quantity
	case m.IsFOC:
		return 0
	default:
		return -m.Quantity
	}
}
