package dto

import "github.com/jhoicas/Vending-api/internal/domain/entity"

// MachineResponse salida de GET /api/machines.
type MachineResponse struct {
	MachineID   string `json:"machine_id"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// NewMachineResponse mapea la entidad a la respuesta.
func NewMachineResponse(m *entity.Machine) MachineResponse {
	return MachineResponse{MachineID: m.ID, Location: m.Location, Description: m.Description}
}
