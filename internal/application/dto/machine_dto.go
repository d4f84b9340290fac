package dto

import "github.com/tu-usuario/warehouse-mro/internal/domain/entity"

// CreateMachineRequest body para POST /api/machines. La máquina se crea junto
// con su primera posición en una sola transacción.
type CreateMachineRequest struct {
	Name     string `json:"name"`
	GroupID  int64  `json:"group_id"`
	DeptID   int64  `json:"dept_id,omitempty"`
	Position string `json:"position"`
}

// MachineResponse representación de una máquina en respuestas.
type MachineResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	GroupID   int64  `json:"group_id"`
	GroupName string `json:"group_name,omitempty"`
	DeptID    int64  `json:"dept_id,omitempty"`
}

// MachineToResponse mapea la entidad al DTO de respuesta.
func MachineToResponse(m *entity.Machine) MachineResponse {
	return MachineResponse{
		ID:        m.ID,
		Name:      m.Name,
		GroupID:   m.GroupID,
		GroupName: m.GroupName,
		DeptID:    m.DeptID,
	}
}

// MachineTypeResponse tipo de máquina en respuestas.
type MachineTypeResponse struct {
	ID      int64  `json:"id"`
	Machine string `json:"machine"`
}

// MachinePositionResponse posición de máquina en respuestas.
type MachinePositionResponse struct {
	ID        int64  `json:"id"`
	MachineID int64  `json:"machine_id"`
	Position  string `json:"position"`
}
