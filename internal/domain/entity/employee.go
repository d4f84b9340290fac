package entity

import "time"

// Employee representa un empleado que puede ejecutar movimientos de almacén.
type Employee struct {
	AmannID     string // identificador corporativo, clave primaria
	Name        string
	Title       string
	Level       string
	Active      bool
	Birthday    *time.Time
	StartDate   *time.Time
	Address     string
	PhoneNumber string
	Email       string
	Gender      string
}
