package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/voese/voesesystem-api/internal/application/dto"
	"github.com/voese/voesesystem-api/internal/domain"
	"github.com/voese/voesesystem-api/internal/domain/entity"
	"github.com/voese/voesesystem-api/internal/domain/fechas"
	"github.com/voese/voesesystem-api/internal/domain/repository"
)

// ProductionUseCase registra corridas de producción y mantiene acoplado el
// stock del producto (stock += cantidad, acumulado += cantidad).
type ProductionUseCase struct {
	store repository.Store
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(store repository.Store) *ProductionUseCase {
	return &ProductionUseCase{store: store}
}

// Register registra una corrida de producción contra un producto existente.
// El mes del registro es el contexto seleccionado por el operador (in.Mes),
// NO la fecha de hoy; vacío = mes en curso. Si el producto no existe la
// operación es un no-op y devuelve ErrProductNotFound.
func (uc *ProductionUseCase) Register(ctx context.Context, in dto.RegisterProductionRequest) (*dto.ProductionResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MaterialsCost.LessThan(decimal.Zero) {
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

	producciones, err := uc.store.LoadProductions(ctx)
	if err != nil {
		return nil, err
	}

	prod := entity.Production{
		ID:            uuid.New().String(),
		ProductID:     productos[idx].ID,
		ProductName:   productos[idx].Name,
		Quantity:      in.Quantity,
		MaterialsCost: in.MaterialsCost,
		Date:          time.Now(),
		Month:         mes,
	}
	if err := uc.store.SaveProductions(ctx, append(producciones, prod)); err != nil {
		return nil, err
	}

	productos[idx].Stock += in.Quantity
	productos[idx].UnitsProducedTotal += in.Quantity
	if err := uc.store.SaveProducts(ctx, productos); err != nil {
		return nil, err
	}

	return toProductionResponse(prod), nil
}

// List devuelve las producciones; con mes no vacío filtra por su Month.
func (uc *ProductionUseCase) List(ctx context.Context, mes string) (*dto.ProductionListResponse, error) {
	producciones, err := uc.store.LoadProductions(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionResponse, 0, len(producciones))
	for _, p := range producciones {
		if mes != "" && p.Month != mes {
			continue
		}
		items = append(items, *toProductionResponse(p))
	}
	return &dto.ProductionListResponse{Items: items}, nil
}

func toProductionResponse(p entity.Production) *dto.ProductionResponse {
	return &dto.ProductionResponse{
		ID:            p.ID,
		ProductID:     p.ProductID,
		ProductName:   p.ProductName,
		Quantity:      p.Quantity,
		MaterialsCost: p.MaterialsCost,
		Date:          p.Date,
		Month:         p.Month,
	}
}
