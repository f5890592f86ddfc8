package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/entity"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/internal/domain/repository"
)

// SaleUseCase registra y elimina ventas manteniendo la conservación de stock:
// registrar descuenta, eliminar restaura exactamente la cantidad vendida.
type SaleUseCase struct {
	store repository.Store
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(store repository.Store) *SaleUseCase {
	return &SaleUseCase{store: store}
}

// Register registra una venta contra un producto existente con stock
// suficiente. El precio unitario se copia del producto según el tipo y
// total = max(0, cantidad × precio − descuento). El mes del registro es el
// contexto seleccionado (in.Mes); vacío = mes en curso.
// Ante cualquier falla de validación no se muta nada.
func (uc *SaleUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.SaleTypeMayorista && in.Tipo != entity.SaleTypeMinorista {
		return nil, domain.ErrInvalidInput
	}
	if in.Descuento.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	mes := in.Mes
	if mes == "" {
		mes = fechas.Actual()
	}
	if !fechas.Valido(mes) {
		return nil, domain.ErrInvalidInput
	}

	productos, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, p := range productos {
		if p.ID == in.ProductID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrProductNotFound
	}
	if in.Quantity > productos[idx].Stock {
		// El mensaje lleva el stock actual para que el operador reintente
		// con una cantidad válida.
		return nil, fmt.Errorf("%w: solo hay %d unidades", domain.ErrInsufficientStock, productos[idx].Stock)
	}

	precio := productos[idx].RetailPrice
	if in.Tipo == entity.SaleTypeMayorista {
		precio = productos[idx].WholesalePrice
	}
	total := precio.Mul(decimal.NewFromInt(in.Quantity)).Sub(in.Descuento)
	if total.LessThan(decimal.Zero) {
		total = decimal.Zero
	}

	ventas, err := uc.store.LoadSales(ctx)
	if err != nil {
		return nil, err
	}

	venta := entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   productos[idx].ID,
		ProductName: productos[idx].Name,
		Type:        in.Tipo,
		Quantity:    in.Quantity,
		UnitPrice:   precio,
		Discount:    in.Descuento,
		Total:       total,
		Date:        time.Now(),
		Month:       mes,
	}
	if err := uc.store.SaveSales(ctx, append(ventas, venta)); err != nil {
		return nil, err
	}

	productos[idx].Stock -= in.Quantity
	if err := uc.store.SaveProducts(ctx, productos); err != nil {
		return nil, err
	}

	return toSaleResponse(venta), nil
}

// Delete elimina una venta y restaura su cantidad al stock del producto.
// Si el producto ya fue eliminado, la restauración es un no-op (el stock de
// un producto inexistente no significa nada).
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	ventas, err := uc.store.LoadSales(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, v := range ventas {
		if v.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrSaleNotFound
	}
	venta := ventas[idx]

	if err := uc.store.SaveSales(ctx, append(ventas[:idx], ventas[idx+1:]...)); err != nil {
		return err
	}

	productos, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return err
	}
	for i, p := range productos {
		if p.ID == venta.ProductID {
			productos[i].Stock += venta.Quantity
			return uc.store.SaveProducts(ctx, productos)
		}
	}
	return nil
}

// List devuelve las ventas; con mes no vacío filtra por su Month.
func (uc *SaleUseCase) List(ctx context.Context, mes string) (*dto.SaleListResponse, error) {
	ventas, err := uc.store.LoadSales(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(ventas))
	for _, v := range ventas {
		if mes != "" && v.Month != mes {
			continue
		}
		items = append(items, *toSaleResponse(v))
	}
	return &dto.SaleListResponse{Items: items}, nil
}

func toSaleResponse(v entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          v.ID,
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		Type:        v.Type,
		Quantity:    v.Quantity,
		UnitPrice:   v.UnitPrice,
		Discount:    v.Discount,
		Total:       v.Total,
		Date:        v.Date,
		Month:       v.Month,
	}
}
