package entity

import "fmt"

// Machine representa una máquina expendedora. Location y Description pueden ir vacíos.
type Machine struct {
	ID          string
	Location    string
	Description string
}

// DisplayName resuelve el nombre visible: ubicación, luego descripción, luego "Machine {id}".
func (m Machine) DisplayName() string {
	return MachineDisplayName(m.ID, m.Location, m.Description)
}

// MachineDisplayName aplica la misma prioridad sobre campos sueltos (filas de analítica).
func MachineDisplayName(id, location, description string) string {
	switch {
	case location != "":
		return location
	case description != "":
		return description
	default:
		return fmt.Sprintf("Machine %s", id)
	}
}
