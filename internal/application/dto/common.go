package dto

import "github.com/shopspring/decimal"

func init() {
	// El tablero consume números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta con un mensaje informativo.
type MessageResponse struct {
	Message string `json:"message"`
}

// OKResponse acuse de las operaciones del ledger que no devuelven fila.
type OKResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
