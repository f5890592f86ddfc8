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
	"github.com/voese/voesesystem-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. Stock y unidades acumuladas se
// mueven solo vía producciones y ventas, nunca desde acá.
type ProductUseCase struct {
	store repository.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// Create crea un producto con stock 0 y acumulado 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.WholesalePrice.LessThan(decimal.Zero) || in.RetailPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	productos, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	producto := entity.Product{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		WholesalePrice: in.WholesalePrice,
		RetailPrice:    in.RetailPrice,
		CreatedAt:      time.Now(),
	}
	if err := uc.store.SaveProducts(ctx, append(productos, producto)); err != nil {
		return nil, err
	}
	return toProductResponse(producto), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	productos, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Delete elimina un producto y, en cascada, todas sus producciones y ventas.
// Los gastos no dependen de productos y quedan intactos.
//
// Orden de escritura: primero las colecciones dependientes, después la de
// productos; así una falla a mitad de camino nunca deja referencias huérfanas
// (cada Save individual es atómico).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	productos, err := uc.store.LoadProducts(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i, p := range productos {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrProductNotFound
	}

	producciones, err := uc.store.LoadProductions(ctx)
	if err != nil {
		return err
	}
	restantes := producciones[:0:0]
	for _, p := range producciones {
		if p.ProductID != id {
			restantes = append(restantes, p)
		}
	}
	if err := uc.store.SaveProductions(ctx, restantes); err != nil {
		return err
	}

	ventas, err := uc.store.LoadSales(ctx)
	if err != nil {
		return err
	}
	ventasRestantes := ventas[:0:0]
	for _, v := range ventas {
		if v.ProductID != id {
			ventasRestantes = append(ventasRestantes, v)
		}
	}
	if err := uc.store.SaveSales(ctx, ventasRestantes); err != nil {
		return err
	}

	return uc.store.SaveProducts(ctx, append(productos[:idx], productos[idx+1:]...))
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Stock:              p.Stock,
		UnitsProducedTotal: p.UnitsProducedTotal,
		WholesalePrice:     p.WholesalePrice,
		RetailPrice:        p.RetailPrice,
		CreatedAt:          p.CreatedAt,
	}
}
