package repository

import (
	"context"

	"github.com/voese/voesesystem-api/internal/domain/entity"
)

// Store define el puerto de persistencia de las cuatro colecciones.
//
// El contrato es cargar/reemplazar la colección completa: cada Save escribe
// una versión nueva de la colección de forma atómica, así toda mutación es
// todo-o-nada a granularidad de colección. No es un motor de consultas.
// Load devuelve slice vacío si la colección nunca se inicializó.
// Un solo escritor a la vez; escritores concurrentes quedan fuera de alcance.
type Store interface {
	LoadProducts(ctx context.Context) ([]entity.Product, error)
	SaveProducts(ctx context.Context, productos []entity.Product) error

	LoadProductions(ctx context.Context) ([]entity.Production, error)
	SaveProductions(ctx context.Context, producciones []entity.Production) error

	LoadSales(ctx context.Context) ([]entity.Sale, error)
	SaveSales(ctx context.Context, ventas []entity.Sale) error

	LoadExpenses(ctx context.Context) ([]entity.Expense, error)
	SaveExpenses(ctx context.Context, gastos []entity.Expense) error

	Close() error
}
