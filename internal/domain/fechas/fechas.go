// Package fechas implementa la clave de mes "YYYY-MM" con la que se agrupa
// cada registro del sistema. Toda la aritmética opera sobre pares (año, mes):
// nunca se cuentan días, así los meses de 28/29/30/31 días y los cambios de
// año salen bien.
package fechas

import (
	"fmt"
	"regexp"
	"time"
)

var reMes = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var nombresMes = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var nombresMesCorto = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Actual devuelve la clave del mes en curso según el reloj local.
func Actual() string {
	return DeFecha(time.Now())
}

// DeFecha devuelve la clave "YYYY-MM" de un instante, en hora local.
func DeFecha(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// Valido reporta si mes tiene el formato "YYYY-MM" con mes 01..12.
func Valido(mes string) bool {
	return reMes.MatchString(mes)
}

// Ultimos devuelve los últimos n meses terminando en el mes en curso,
// ordenados del más antiguo al más reciente.
func Ultimos(n int) []string {
	return UltimosDesde(time.Now(), n)
}

// UltimosDesde devuelve los n meses que terminan en el mes de t, del más
// antiguo al más reciente. Ej: t en 2025-01, n=3 -> [2024-11 2024-12 2025-01].
func UltimosDesde(t time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	meses := make([]string, 0, n)
	// índice absoluto de mes: año*12 + (mes-1)
	base := t.Year()*12 + int(t.Month()) - 1
	for i := n - 1; i >= 0; i-- {
		abs := base - i
		meses = append(meses, fmt.Sprintf("%04d-%02d", abs/12, abs%12+1))
	}
	return meses
}

// Anterior devuelve la clave del mes inmediatamente anterior a mes.
// Si mes es inválido devuelve "".
func Anterior(mes string) string {
	var anio, m int
	if _, err := fmt.Sscanf(mes, "%d-%d", &anio, &m); err != nil || m < 1 || m > 12 {
		return ""
	}
	abs := anio*12 + m - 2
	return fmt.Sprintf("%04d-%02d", abs/12, abs%12+1)
}

// DelAnio devuelve las 12 claves de un año calendario: "YYYY-01".."YYYY-12".
func DelAnio(anio int) []string {
	meses := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		meses = append(meses, fmt.Sprintf("%04d-%02d", anio, m))
	}
	return meses
}

// Nombre devuelve el nombre largo en español: "2025-01" -> "enero 2025".
// Devuelve mes sin cambios si la clave es inválida.
func Nombre(mes string) string {
	var anio, m int
	if _, err := fmt.Sscanf(mes, "%d-%d", &anio, &m); err != nil || m < 1 || m > 12 {
		return mes
	}
	return fmt.Sprintf("%s %d", nombresMes[m-1], anio)
}

// NombreCorto devuelve la abreviatura en español: "2025-01" -> "ene".
func NombreCorto(mes string) string {
	var anio, m int
	if _, err := fmt.Sscanf(mes, "%d-%d", &anio, &m); err != nil || m < 1 || m > 12 {
		return mes
	}
	return nombresMesCorto[m-1]
}
