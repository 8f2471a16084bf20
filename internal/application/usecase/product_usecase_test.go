package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/comercio-pro/internal/application/dto"
	"github.com/tu-usuario/comercio-pro/internal/domain"
)

func newProductUC() (*ProductUseCase, *orderState) {
	state := newOrderState()
	return NewProductUseCase(&memProductRepo{s: state}), state
}

func TestCreateProduct_OK(t *testing.T) {
	uc, _ := newProductUC()

	got, err := uc.Create(dto.CreateProductRequest{
		SKU:      "SKU-100",
		Name:     "Monitor",
		Category: "perifericos",
		Price:    decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.True(t, got.IsActive)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(300)))
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-100", Name: "Monitor", Price: decimal.NewFromInt(300)})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-100", Name: "Otro monitor", Price: decimal.NewFromInt(250)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateProduct_PrecioNegativo(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-100", Name: "Monitor", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_SinSKU(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{Name: "Monitor", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProduct_CambiaSoloLoEnviado(t *testing.T) {
	uc, _ := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{
		SKU: "SKU-100", Name: "Monitor", Description: "24 pulgadas", Price: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(280)
	got, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(newPrice))
	assert.Equal(t, "Monitor", got.Name)
	assert.Equal(t, "24 pulgadas", got.Description)
}

func TestUpdateProduct_Inexistente(t *testing.T) {
	uc, _ := newProductUC()

	got, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeactivateProduct_SaleDelListado(t *testing.T) {
	uc, _ := newProductUC()

	created, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-100", Name: "Monitor", Price: decimal.NewFromInt(300)})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(created.ID))

	list, err := uc.List(dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list)

	// Sigue siendo consultable por ID (las órdenes viejas lo referencian).
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
}

func TestDeactivateProduct_Inexistente(t *testing.T) {
	uc, _ := newProductUC()

	err := uc.Deactivate("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
