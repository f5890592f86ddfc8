// Package moneda formatea montos en guaraníes (₲, es-PY) para reportes.
// Los montos se redondean al guaraní entero: la moneda no usa centésimos
// en la práctica comercial.
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-PY"))

// Formato devuelve el monto redondeado con separador de miles es-PY.
// Ej: 1234567 -> "1.234.567".
func Formato(monto decimal.Decimal) string {
	return printer.Sprintf("%d", monto.Round(0).IntPart())
}

// ConSimbolo antepone el símbolo guaraní. Ej: "₲ 1.234.567".
func ConSimbolo(monto decimal.Decimal) string {
	return "₲ " + Formato(monto)
}
