package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes viajan tal cual hasta la capa HTTP y los reportes de error.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrSaleNotFound      = errors.New("venta no encontrada")
	ErrExpenseNotFound   = errors.New("gasto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrPersistence       = errors.New("error de persistencia")
	ErrExport            = errors.New("error al generar el reporte")
)
