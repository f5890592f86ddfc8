package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/entity"
)

// Store implementa repository.Store sobre tablas tipadas. Cada Save
// reemplaza la tabla completa en una transacción; Load lee todas las filas.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el store sobre un pool ya inicializado.
func NewStore(pool *pgxpool.Pool) *Store { return &Store{pool: pool} }

func (s *Store) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, stock, units_produced_total, wholesale_price, retail_price, created_at
		FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: leer products: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var productos []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.UnitsProducedTotal,
			&p.WholesalePrice, &p.RetailPrice, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan products: %v", domain.ErrPersistence, err)
		}
		productos = append(productos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterar products: %v", domain.ErrPersistence, err)
	}
	return productos, nil
}

func (s *Store) SaveProducts(ctx context.Context, productos []entity.Product) error {
	return s.replace(ctx, "products",
		[]string{"id", "name", "stock", "units_produced_total", "wholesale_price", "retail_price", "created_at"},
		len(productos), func(i int) []any {
			p := productos[i]
			return []any{p.ID, p.Name, p.Stock, p.UnitsProducedTotal, p.WholesalePrice, p.RetailPrice, p.CreatedAt}
		})
}

func (s *Store) LoadProductions(ctx context.Context) ([]entity.Production, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, product_id, product_name, quantity, materials_cost, date, month
		FROM productions ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: leer productions: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var producciones []entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.ProductID, &p.ProductName, &p.Quantity,
			&p.MaterialsCost, &p.Date, &p.Month); err != nil {
			return nil, fmt.Errorf("%w: scan productions: %v", domain.ErrPersistence, err)
		}
		producciones = append(producciones, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterar productions: %v", domain.ErrPersistence, err)
	}
	return producciones, nil
}

func (s *Store) SaveProductions(ctx context.Context, producciones []entity.Production) error {
	return s.replace(ctx, "productions",
		[]string{"id", "product_id", "product_name", "quantity", "materials_cost", "date", "month"},
		len(producciones), func(i int) []any {
			p := producciones[i]
			return []any{p.ID, p.ProductID, p.ProductName, p.Quantity, p.MaterialsCost, p.Date, p.Month}
		})
}

func (s *Store) LoadSales(ctx context.Context) ([]entity.Sale, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, product_id, product_name, type, quantity, unit_price, discount, total, date, month
		FROM sales ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: leer sales: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var ventas []entity.Sale
	for rows.Next() {
		var v entity.Sale
		if err := rows.Scan(&v.ID, &v.ProductID, &v.ProductName, &v.Type, &v.Quantity,
			&v.UnitPrice, &v.Discount, &v.Total, &v.Date, &v.Month); err != nil {
			return nil, fmt.Errorf("%w: scan sales: %v", domain.ErrPersistence, err)
		}
		ventas = append(ventas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterar sales: %v", domain.ErrPersistence, err)
	}
	return ventas, nil
}

func (s *Store) SaveSales(ctx context.Context, ventas []entity.Sale) error {
	return s.replace(ctx, "sales",
		[]string{"id", "product_id", "product_name", "type", "quantity", "unit_price", "discount", "total", "date", "month"},
		len(ventas), func(i int) []any {
			v := ventas[i]
			return []any{v.ID, v.ProductID, v.ProductName, v.Type, v.Quantity, v.UnitPrice, v.Discount, v.Total, v.Date, v.Month}
		})
}

func (s *Store) LoadExpenses(ctx context.Context) ([]entity.Expense, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, type, description, amount, date, month
		FROM expenses ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: leer expenses: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var gastos []entity.Expense
	for rows.Next() {
		var g entity.Expense
		if err := rows.Scan(&g.ID, &g.Type, &g.Description, &g.Amount, &g.Date, &g.Month); err != nil {
			return nil, fmt.Errorf("%w: scan expenses: %v", domain.ErrPersistence, err)
		}
		gastos = append(gastos, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterar expenses: %v", domain.ErrPersistence, err)
	}
	return gastos, nil
}

func (s *Store) SaveExpenses(ctx context.Context, gastos []entity.Expense) error {
	return s.replace(ctx, "expenses",
		[]string{"id", "type", "description", "amount", "date", "month"},
		len(gastos), func(i int) []any {
			g := gastos[i]
			return []any{g.ID, g.Type, g.Description, g.Amount, g.Date, g.Month}
		})
}

// Close cierra el pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// replace vacía la tabla y la recarga vía COPY dentro de una transacción.
func (s *Store) replace(ctx context.Context, table string, columns []string, n int, values func(i int) []any) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin %s: %v", domain.ErrPersistence, table, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE "+table); err != nil {
		return fmt.Errorf("%w: truncate %s: %v", domain.ErrPersistence, table, err)
	}
	if n > 0 {
		_, err = tx.CopyFrom(ctx, pgx.Identifier{table}, columns,
			pgx.CopyFromSlice(n, func(i int) ([]any, error) { return values(i), nil }))
		if err != nil {
			return fmt.Errorf("%w: copy %s: %v", domain.ErrPersistence, table, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit %s: %v", domain.ErrPersistence, table, err)
	}
	return nil
}
