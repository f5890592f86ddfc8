// Package sqlite implementa repository.Store sobre un archivo SQLite.
// Cada colección se guarda como un arreglo JSON completo en la tabla
// collections, una fila por colección. Save reemplaza el arreglo entero,
// de modo que el archivo siempre refleja el último estado consistente.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/entity"
)

// Claves de las colecciones dentro de la tabla collections.
const (
	keyProductos    = "vs_productos"
	keyProducciones = "vs_producciones"
	keyVentas       = "vs_ventas"
	keyGastos       = "vs_gastos"
)

// Store persiste las colecciones en SQLite. maxBytes limita el tamaño
// sumado de los JSON almacenados; al superarlo Save falla con
// domain.ErrPersistence y no escribe nada.
type Store struct {
	db       *sql.DB
	maxBytes int64
}

// NewStore abre (o crea) el archivo, corre las migraciones y devuelve el
// store listo. maxBytes <= 0 desactiva el límite de capacidad.
func NewStore(path string, maxBytes int64) (*Store, error) {
	if err := runMigrations(path); err != nil {
		return nil, fmt.Errorf("%w: migraciones sqlite: %v", domain.ErrPersistence, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrPersistence, path, err)
	}
	// Un solo escritor: SQLite serializa mal escrituras concurrentes sobre
	// la misma conexión en modo journal por defecto.
	db.SetMaxOpenConns(1)
	return &Store{db: db, maxBytes: maxBytes}, nil
}

func (s *Store) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	return load[entity.Product](ctx, s, keyProductos)
}

func (s *Store) SaveProducts(ctx context.Context, productos []entity.Product) error {
	return save(ctx, s, keyProductos, productos)
}

func (s *Store) LoadProductions(ctx context.Context) ([]entity.Production, error) {
	return load[entity.Production](ctx, s, keyProducciones)
}

func (s *Store) SaveProductions(ctx context.Context, producciones []entity.Production) error {
	return save(ctx, s, keyProducciones, producciones)
}

func (s *Store) LoadSales(ctx context.Context) ([]entity.Sale, error) {
	return load[entity.Sale](ctx, s, keyVentas)
}

func (s *Store) SaveSales(ctx context.Context, ventas []entity.Sale) error {
	return save(ctx, s, keyVentas, ventas)
}

func (s *Store) LoadExpenses(ctx context.Context) ([]entity.Expense, error) {
	return load[entity.Expense](ctx, s, keyGastos)
}

func (s *Store) SaveExpenses(ctx context.Context, gastos []entity.Expense) error {
	return save(ctx, s, keyGastos, gastos)
}

// Close cierra la conexión al archivo.
func (s *Store) Close() error { return s.db.Close() }

func load[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // colección nunca escrita = vacía
	}
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrPersistence, key, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decodificar %s: %v", domain.ErrPersistence, key, err)
	}
	return items, nil
}

func save[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: codificar %s: %v", domain.ErrPersistence, key, err)
	}

	if s.maxBytes > 0 {
		var resto int64
		err := s.db.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(LENGTH(data)), 0) FROM collections WHERE name <> ?`, key,
		).Scan(&resto)
		if err != nil {
			return fmt.Errorf("%w: medir capacidad: %v", domain.ErrPersistence, err)
		}
		if resto+int64(len(raw)) > s.maxBytes {
			return fmt.Errorf("%w: capacidad excedida (%d de %d bytes)",
				domain.ErrPersistence, resto+int64(len(raw)), s.maxBytes)
		}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		key, raw,
	)
	if err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrPersistence, key, err)
	}
	return nil
}
