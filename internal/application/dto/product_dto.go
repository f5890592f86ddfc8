package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicia en 0
// y solo lo mueven producciones y ventas.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Stock              int64           `json:"stock"`
	UnitsProducedTotal int64           `json:"units_produced_total"`
	WholesalePrice     decimal.Decimal `json:"wholesale_price"`
	RetailPrice        decimal.Decimal `json:"retail_price"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
