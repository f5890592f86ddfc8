package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/entity"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/internal/domain/repository"
)

// ExpenseUseCase registra y elimina gastos. Los gastos son independientes de
// los productos: nada más se toca al mutarlos.
type ExpenseUseCase struct {
	store repository.Store
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(store repository.Store) *ExpenseUseCase {
	return &ExpenseUseCase{store: store}
}

// Register registra un gasto. Único registro cuyo mes se deriva de su propia
// fecha: el operador puede cargar un gasto atrasado y cae en el mes correcto.
func (uc *ExpenseUseCase) Register(ctx context.Context, in dto.RegisterExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Tipo != entity.ExpenseTypeFabricacion && in.Tipo != entity.ExpenseTypePersonal {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Descripcion) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Monto.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	gastos, err := uc.store.LoadExpenses(ctx)
	if err != nil {
		return nil, err
	}

	gasto := entity.Expense{
		ID:          uuid.New().String(),
		Type:        in.Tipo,
		Description: strings.TrimSpace(in.Descripcion),
		Amount:      in.Monto,
		Date:        fecha,
		Month:       fechas.DeFecha(fecha),
	}
	if err := uc.store.SaveExpenses(ctx, append(gastos, gasto)); err != nil {
		return nil, err
	}
	return toExpenseResponse(gasto), nil
}

// Delete elimina un gasto sin efectos sobre otras entidades.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	gastos, err := uc.store.LoadExpenses(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, g := range gastos {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrExpenseNotFound
	}
	return uc.store.SaveExpenses(ctx, append(gastos[:idx], gastos[idx+1:]...))
}

// List devuelve los gastos; con mes no vacío filtra por su Month.
func (uc *ExpenseUseCase) List(ctx context.Context, mes string) (*dto.ExpenseListResponse, error) {
	gastos, err := uc.store.LoadExpenses(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(gastos))
	for _, g := range gastos {
		if mes != "" && g.Month != mes {
			continue
		}
		items = append(items, *toExpenseResponse(g))
	}
	return &dto.ExpenseListResponse{Items: items}, nil
}

func toExpenseResponse(g entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          g.ID,
		Type:        g.Type,
		Description: g.Description,
		Amount:      g.Amount,
		Date:        g.Date,
		Month:       g.Month,
	}
}
