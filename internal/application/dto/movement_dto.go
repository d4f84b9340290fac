package dto

import (
	"time"

	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
)

// RecordMovementRequest body para POST /api/movements.
type RecordMovementRequest struct {
	PartID       string `json:"part_id"`
	Quantity     int64  `json:"quantity"`
	Flag         string `json:"flag"` // IMPORT | EXPORT
	EmployeeID   string `json:"employee_id"`
	MachinePosID *int64 `json:"machine_pos_id,omitempty"`
	Reason       string `json:"reason,omitempty"`
	IsFOC        bool   `json:"is_foc,omitempty"`
}

// MovementResponse representación de una entrada del log.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	PartID        string    `json:"part_id"`
	Quantity      int64     `json:"quantity"`
	Flag          string    `json:"flag"`
	EmployeeID    string    `json:"employee_id"`
	MachinePosID  *int64    `json:"machine_pos_id,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	IsFOC         bool      `json:"is_foc"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovementToResponse mapea la entidad al DTO de respuesta.
func MovementToResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		PartID:        m.PartID,
		Quantity:      m.Quantity,
		Flag:          m.Flag,
		EmployeeID:    m.EmployeeID,
		MachinePosID:  m.MachinePosID,
		Reason:        m.Reason,
		IsFOC:         m.IsFOC,
		CreatedAt:     m.CreatedAt,
	}
}
