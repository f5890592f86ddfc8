package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterProductionRequest entrada para registrar una corrida de producción.
// Mes es el contexto de mes seleccionado por el operador ("YYYY-MM");
// vacío = mes en curso.
type RegisterProductionRequest struct {
	ProductID     string          `json:"product_id" validate:"required"`
	Quantity      int64           `json:"quantity" validate:"required,gt=0"`
	MaterialsCost decimal.Decimal `json:"materials_cost"`
	Mes           string          `json:"mes"`
}

// ProductionResponse salida de una corrida de producción.
type ProductionResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int64           `json:"quantity"`
	MaterialsCost decimal.Decimal `json:"materials_cost"`
	Date          time.Time       `json:"date"`
	Month         string          `json:"month"`
}

// ProductionListResponse lista de producciones.
type ProductionListResponse struct {
	Items []ProductionResponse `json:"items"`
}
