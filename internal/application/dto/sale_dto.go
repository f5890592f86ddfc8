package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest entrada para registrar una venta.
// Tipo: "mayorista" o "minorista"; el precio unitario se copia del producto.
// Descuento es un monto absoluto en guaraníes. Mes vacío = mes en curso.
type RegisterSaleRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Tipo      string          `json:"tipo" validate:"required,oneof=mayorista minorista"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	Descuento decimal.Decimal `json:"descuento"`
	Mes       string          `json:"mes"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Type        string          `json:"type"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
	Month       string          `json:"month"`
}

// SaleListResponse lista de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
