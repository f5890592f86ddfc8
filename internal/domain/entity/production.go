package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production representa una corrida de producción.
// ProductName es una foto del nombre al momento de registrar: un renombre
// posterior del producto no reescribe la historia.
// Month NO se deriva de Date: queda fijado con el mes seleccionado por el
// operador al registrar (ver gastos para el caso contrario).
type Production struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int64           `json:"quantity"`
	MaterialsCost decimal.Decimal `json:"materials_cost"`
	Date          time.Time       `json:"date"`
	Month         string          `json:"month"` // "YYYY-MM"
}
