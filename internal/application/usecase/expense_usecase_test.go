package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/internal/infrastructure/memory"
)

func TestRegisterExpenseDerivesMonthFromDate(t *testing.T) {
	store := memory.NewStore()
	uc := NewExpenseUseCase(store)
	ctx := context.Background()

	// Gasto atrasado: el mes sale de la fecha del gasto, no del mes en curso.
	gasto, err := uc.Register(ctx, dto.RegisterExpenseRequest{
		Tipo:        "personal",
		Descripcion: "Supermercado",
		Monto:       decimal.NewFromInt(150000),
		Fecha:       time.Date(2024, 2, 15, 10, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02", gasto.Month)

	// Sin fecha: ahora, mes en curso.
	gasto, err = uc.Register(ctx, dto.RegisterExpenseRequest{
		Tipo:        "fabricacion",
		Descripcion: "Envases",
		Monto:       decimal.NewFromInt(40000),
	})
	require.NoError(t, err)
	assert.Equal(t, fechas.Actual(), gasto.Month)
}

func TestRegisterExpenseValidation(t *testing.T) {
	store := memory.NewStore()
	uc := NewExpenseUseCase(store)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterExpenseRequest{
		Tipo: "otro", Descripcion: "x", Monto: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterExpenseRequest{
		Tipo: "personal", Descripcion: "   ", Monto: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterExpenseRequest{
		Tipo: "personal", Descripcion: "x", Monto: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteExpense(t *testing.T) {
	store := memory.NewStore()
	uc := NewExpenseUseCase(store)
	ctx := context.Background()

	gasto, err := uc.Register(ctx, dto.RegisterExpenseRequest{
		Tipo: "personal", Descripcion: "Farmacia", Monto: decimal.NewFromInt(20000),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, gasto.ID))
	assert.ErrorIs(t, uc.Delete(ctx, gasto.ID), domain.ErrExpenseNotFound, "segundo delete debe fallar")
}
