package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterExpenseRequest entrada para registrar un gasto.
// El mes del gasto se deriva de Fecha (se puede cargar con fecha pasada);
// Fecha en cero = ahora.
type RegisterExpenseRequest struct {
	Tipo        string          `json:"tipo" validate:"required,oneof=fabricacion personal"`
	Descripcion string          `json:"descripcion" validate:"required,min=1"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Month       string          `json:"month"`
}

// ExpenseListResponse lista de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
}
