package entity

// MachineType clasifica repuestos por el tipo de máquina al que pertenecen.
type MachineType struct {
	ID      int64
	Machine string
}

// MachineGroup agrupa máquinas por línea o área.
type MachineGroup struct {
	ID   int64
	Name string
}

// Machine es un equipo físico de planta.
type Machine struct {
	ID        int64
	Name      string
	GroupID   int64
	GroupName string // nombre del grupo (join en listados)
	DeptID    int64
}

// MachinePosition es una posición concreta dentro de una máquina; las salidas
// por consumo de equipo referencian una posición.
type MachinePosition struct {
	ID        int64
	MachineID int64
	Position  string
}
