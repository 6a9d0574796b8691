package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/domain"
	"github.com/stockkasir/stockkasir-api/internal/domain/entity"
	"github.com/stockkasir/stockkasir-api/internal/domain/repository"
	"github.com/stockkasir/stockkasir-api/internal/subscription"
)

// CatalogUseCase administra el catálogo de artículos: alta, edición de campos
// descriptivos, baja y listado. Nunca toca Quantity; el stock lo muta
// exclusivamente RecordMovementUseCase.
type CatalogUseCase struct {
	itemRepo repository.ItemRepository
	notifier Notifier
	units    map[string]struct{} // enumeración cerrada de unidades (configuración)
}

// NewCatalogUseCase construye el caso de uso. units viene de configuración
// (INVENTORY_UNITS), p.ej. Pack, Pcs, Roll, Box, Kg, Gram, ML, L.
func NewCatalogUseCase(itemRepo repository.ItemRepository, notifier Notifier, units []string) *CatalogUseCase {
	set := make(map[string]struct{}, len(units))
	for _, u := range units {
		set[u] = struct{}{}
	}
	return &CatalogUseCase{itemRepo: itemRepo, notifier: notifier, units: set}
}

// ValidUnit indica si la unidad pertenece a la enumeración configurada.
func (uc *CatalogUseCase) ValidUnit(unit string) bool {
	_, ok := uc.units[unit]
	return ok
}

// CreateItem crea un artículo con stock 0. El SKU se autogenera si no viene.
func (uc *CatalogUseCase) CreateItem(ctx context.Context, userID string, in dto.CreateItemRequest) (*entity.StockItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !uc.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}

	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = generateSKU()
	}

	now := time.Now()
	item := &entity.StockItem{
		ID:                uuid.New().String(),
		UserID:            userID,
		Name:              name,
		SKU:               sku,
		Unit:              in.Unit,
		Quantity:          0, // siempre; el stock inicial entra como movimiento "in"
		LowStockThreshold: in.LowStockThreshold,
		UrgentNote:        in.UrgentNote,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	uc.notifier.Publish(subscription.TopicItems(userID))
	return item, nil
}

// UpdateItem edita nombre, unidad, límite de stock bajo y nota urgente.
// La cantidad no es editable por esta ruta.
func (uc *CatalogUseCase) UpdateItem(ctx context.Context, userID, id string, in dto.UpdateItemRequest) (*entity.StockItem, error) {
	item, err := uc.itemRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
	}
	if in.Unit != nil {
		if !uc.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		item.Unit = *in.Unit
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.LowStockThreshold = *in.LowStockThreshold
	}
	if in.UrgentNote != nil {
		item.UrgentNote = *in.UrgentNote
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	uc.notifier.Publish(subscription.TopicItems(userID))
	return item, nil
}

// DeleteItem elimina un artículo del catálogo. Las transacciones históricas
// sobreviven con su snapshot desnormalizado de nombre y unidad.
func (uc *CatalogUseCase) DeleteItem(ctx context.Context, userID, id string) error {
	item, err := uc.itemRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := uc.itemRepo.Delete(userID, id); err != nil {
		return err
	}
	uc.notifier.Publish(subscription.TopicItems(userID))
	return nil
}

// ListItems devuelve el catálogo ordenado por nombre ascendente.
func (uc *CatalogUseCase) ListItems(ctx context.Context, userID string) ([]*entity.StockItem, error) {
	return uc.itemRepo.ListByUser(userID)
}

// GetItem devuelve un artículo por ID.
func (uc *CatalogUseCase) GetItem(ctx context.Context, userID, id string) (*entity.StockItem, error) {
	item, err := uc.itemRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// generateSKU produce un código tipo SKU-3F9A21C a partir de un UUID.
func generateSKU() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "SKU-" + raw[:7]
}
