package inventory_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockkasir/stockkasir-api/internal/application/dto"
	"github.com/stockkasir/stockkasir-api/internal/application/inventory"
	"github.com/stockkasir/stockkasir-api/internal/domain"
)

var testUnits = []string{"Pack", "Pcs", "Roll", "Box"}

func newCatalog(s *memStore) (*inventory.CatalogUseCase, *memNotifier) {
	notifier := &memNotifier{}
	return inventory.NewCatalogUseCase(&memItemRepo{s}, notifier, testUnits), notifier
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateItem
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItem_SiempreConStockCero(t *testing.T) {
	store := newMemStore()
	uc, notifier := newCatalog(store)

	item, err := uc.CreateItem(context.Background(), testUser, dto.CreateItemRequest{
		Name:              "Barra de Oro",
		Unit:              "Pcs",
		LowStockThreshold: 10,
	})

	require.NoError(t, err)
	assert.Zero(t, item.Quantity, "el stock inicial siempre entra después como movimiento de entrada")
	assert.Equal(t, 10, item.LowStockThreshold)
	assert.NotEmpty(t, item.ID)
	assert.Contains(t, notifier.published(), "items/"+testUser)
}

func TestCreateItem_SKUAutogenerado(t *testing.T) {
	store := newMemStore()
	uc, _ := newCatalog(store)

	item, err := uc.CreateItem(context.Background(), testUser, dto.CreateItemRequest{
		Name: "Arroz",
		Unit: "Pack",
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^SKU-[0-9A-F]{7}$`), item.SKU)
}

func TestCreateItem_SKUExplicitoSeRespeta(t *testing.T) {
	store := newMemStore()
	uc, _ := newCatalog(store)

	item, err := uc.CreateItem(context.Background(), testUser, dto.CreateItemRequest{
		Name: "Arroz",
		SKU:  "ARZ-001",
		Unit: "Pack",
	})

	require.NoError(t, err)
	assert.Equal(t, "ARZ-001", item.SKU)
}

func TestCreateItem_UnidadFueraDeEnumeracion(t *testing.T) {
	store := newMemStore()
	uc, _ := newCatalog(store)

	_, err := uc.CreateItem(context.Background(), testUser, dto.CreateItemRequest{
		Name: "Arroz",
		Unit: "Toneladas", // no configurada
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateItem_NombreVacio(t *testing.T) {
	store := newMemStore()
	uc, _ := newCatalog(store)

	_, err := uc.CreateItem(context.Background(), testUser, dto.CreateItemRequest{
		Name: "   ",
		Unit: "Pcs",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateItem — la cantidad no es editable por esta ruta
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateItem_NoTocaLaCantidad(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Arroz", 42, 5)
	uc, _ := newCatalog(store)

	newName := "Arroz Integral"
	newThreshold := 8
	updated, err := uc.UpdateItem(context.Background(), testUser, "item-1", dto.UpdateItemRequest{
		Name:              &newName,
		LowStockThreshold: &newThreshold,
	})

	require.NoError(t, err)
	assert.Equal(t, "Arroz Integral", updated.Name)
	assert.Equal(t, 8, updated.LowStockThreshold)
	assert.Equal(t, 42, store.items["item-1"].Quantity, "editar el catálogo jamás mueve stock")
}

func TestUpdateItem_CamposOmitidosSeConservan(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Arroz", 10, 5)
	uc, _ := newCatalog(store)

	note := "pedir antes del viernes"
	updated, err := uc.UpdateItem(context.Background(), testUser, "item-1", dto.UpdateItemRequest{
		UrgentNote: &note,
	})

	require.NoError(t, err)
	assert.Equal(t, "Arroz", updated.Name, "los campos no enviados no cambian")
	assert.Equal(t, "pedir antes del viernes", updated.UrgentNote)
}

func TestUpdateItem_Inexistente(t *testing.T) {
	store := newMemStore()
	uc, _ := newCatalog(store)

	name := "X"
	_, err := uc.UpdateItem(context.Background(), testUser, "no-existe", dto.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DeleteItem / GetItem
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteItem_NotificaYElimina(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Arroz", 10, 5)
	uc, notifier := newCatalog(store)

	require.NoError(t, uc.DeleteItem(context.Background(), testUser, "item-1"))
	assert.NotContains(t, store.items, "item-1")
	assert.Contains(t, notifier.published(), "items/"+testUser)

	err := uc.DeleteItem(context.Background(), testUser, "item-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetItem_DeOtroUsuarioNoEsVisible(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Arroz", 10, 5)
	uc, _ := newCatalog(store)

	_, err := uc.GetItem(context.Background(), "otro-usuario", "item-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "el catálogo está delimitado por usuario")
}
