// Package memory implementa repository.Store en memoria. Se usa en tests y
// como driver "memory" para correr la API sin base de datos.
package memory

import (
	"context"
	"sync"

	"github.com/voese/voesesystem-api/internal/domain/entity"
)

// Store guarda las cuatro colecciones en slices protegidos por mutex.
// Load devuelve copias para que el caller pueda mutar sin ensuciar el estado.
type Store struct {
	mu          sync.RWMutex
	products    []entity.Product
	productions []entity.Production
	sales       []entity.Sale
	expenses    []entity.Expense
}

// NewStore construye un store vacío.
func NewStore() *Store { return &Store{} }

func (s *Store) LoadProducts(_ context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product(nil), s.products...), nil
}

func (s *Store) SaveProducts(_ context.Context, productos []entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]entity.Product(nil), productos...)
	return nil
}

func (s *Store) LoadProductions(_ context.Context) ([]entity.Production, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Production(nil), s.productions...), nil
}

func (s *Store) SaveProductions(_ context.Context, producciones []entity.Production) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productions = append([]entity.Production(nil), producciones...)
	return nil
}

func (s *Store) LoadSales(_ context.Context) ([]entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Sale(nil), s.sales...), nil
}

func (s *Store) SaveSales(_ context.Context, ventas []entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append([]entity.Sale(nil), ventas...)
	return nil
}

func (s *Store) LoadExpenses(_ context.Context) ([]entity.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Expense(nil), s.expenses...), nil
}

func (s *Store) SaveExpenses(_ context.Context, gastos []entity.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append([]entity.Expense(nil), gastos...)
	return nil
}

// Close no tiene recursos que liberar.
func (s *Store) Close() error { return nil }
