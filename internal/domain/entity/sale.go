package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta según la lista de precios aplicada.
const (
	SaleTypeMayorista = "mayorista"
	SaleTypeMinorista = "minorista"
)

// Sale representa una venta registrada.
// UnitPrice se copia del producto al momento de la venta; Total ya viene
// calculado (cantidad × precio − descuento, nunca negativo).
// Month queda fijado con el mes seleccionado por el operador, igual que en
// Production.
type Sale struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Type        string          `json:"type"` // mayorista | minorista
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"` // monto absoluto en guaraníes
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
	Month       string          `json:"month"` // "YYYY-MM"
}
