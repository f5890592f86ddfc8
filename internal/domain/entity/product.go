package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto fabricado por el taller.
// Stock y UnitsProducedTotal son derivados: solo los mutan los casos de uso
// de producción y venta (nunca directamente la API).
type Product struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Stock              int64           `json:"stock"`
	UnitsProducedTotal int64           `json:"units_produced_total"`
	WholesalePrice     decimal.Decimal `json:"wholesale_price"` // precio mayorista
	RetailPrice        decimal.Decimal `json:"retail_price"`    // precio minorista
	CreatedAt          time.Time       `json:"created_at"`
}
