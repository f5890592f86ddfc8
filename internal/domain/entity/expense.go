package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de gasto. Solo los de fabricación entran al costo unitario;
// ambos descuentan del efectivo disponible.
const (
	ExpenseTypeFabricacion = "fabricacion"
	ExpenseTypePersonal    = "personal"
)

// Expense representa un gasto del taller o personal del operador.
// A diferencia de Production y Sale, Month SÍ se deriva de Date: el operador
// puede cargar un gasto con fecha pasada y cae en el mes que corresponde.
type Expense struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"` // fabricacion | personal
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Month       string          `json:"month"` // "YYYY-MM", derivado de Date
}
