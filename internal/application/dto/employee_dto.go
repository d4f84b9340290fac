package dto

import (
	"time"

	"github.com/tu-usuario/warehouse-mro/internal/domain/entity"
)

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	AmannID     string     `json:"amann_id"`
	Name        string     `json:"name"`
	Title       string     `json:"title,omitempty"`
	Level       string     `json:"level,omitempty"`
	Active      bool       `json:"active"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	Address     string     `json:"address,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Email       string     `json:"email,omitempty"`
	Gender      string     `json:"gender,omitempty"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:amann_id.
type UpdateEmployeeRequest struct {
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Level  string `json:"level,omitempty"`
	Active bool   `json:"active"`
}

// EmployeeResponse representación de un empleado en respuestas.
type EmployeeResponse struct {
	AmannID     string     `json:"amann_id"`
	Name        string     `json:"name"`
	Title       string     `json:"title,omitempty"`
	Level       string     `json:"level,omitempty"`
	Active      bool       `json:"active"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	Address     string     `json:"address,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Email       string     `json:"email,omitempty"`
	Gender      string     `json:"gender,omitempty"`
}

// EmployeeToResponse mapea la entidad al DTO de respuesta.
func EmployeeToResponse(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		AmannID:     e.AmannID,
		Name:        e.Name,
		Title:       e.Title,
		Level:       e.Level,
		Active:      e.Active,
		Birthday:    e.Birthday,
		StartDate:   e.StartDate,
		Address:     e.Address,
		PhoneNumber: e.PhoneNumber,
		Email:       e.Email,
		Gender:      e.Gender,
	}
}
