package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// fakeCatalogAPI puerto de catálogo con respuestas programadas.
type fakeCatalogAPI struct {
	page    entity.ProductPage
	product entity.Product
	recent  []entity.Product
	err     error
}

func (f *fakeCatalogAPI) ListProducts(context.Context, int, int, string) (entity.ProductPage, error) {
	return f.page, f.err
}

func (f *fakeCatalogAPI) GetProduct(context.Context, int) (entity.Product, error) {
	return f.product, f.err
}

func (f *fakeCatalogAPI) SearchProducts(context.Context, string, int, int) (entity.ProductPage, error) {
	return f.page, f.err
}

func (f *fakeCatalogAPI) ProductsByStore(context.Context, int, int, int) (entity.ProductPage, error) {
	return f.page, f.err
}

func (f *fakeCatalogAPI) ProductsByCategory(context.Context, int, int, int) (entity.ProductPage, error) {
	return f.page, f.err
}

func (f *fakeCatalogAPI) RecentProducts(context.Context) ([]entity.Product, error) {
	return f.recent, f.err
}

func TestProductRepository_ListadoPublicaProductos(t *testing.T) {
	page := entity.ProductPage{
		Productos:   []entity.Product{{ID: 1, Nombre: "Laptop Pro"}},
		CurrentPage: 0,
		TotalItems:  1,
		TotalPages:  1,
	}
	fake := &fakeCatalogAPI{page: page}
	repo := NewProductRepository(fake)

	got, err := repo.ListProducts(context.Background(), 0, 10, "id")
	require.NoError(t, err)
	assert.Equal(t, page, got)
	assert.Equal(t, page.Productos, repo.Products().Get())
}

func TestProductRepository_GetProductPublicaSeleccion(t *testing.T) {
	fake := &fakeCatalogAPI{product: entity.Product{ID: 3, Nombre: "Auriculares"}}
	repo := NewProductRepository(fake)

	require.Nil(t, repo.Selected().Get())

	_, err := repo.GetProduct(context.Background(), 3)
	require.NoError(t, err)

	sel := repo.Selected().Get()
	require.NotNil(t, sel)
	assert.Equal(t, 3, sel.ID)
}

func TestProductRepository_FalloConservaListadoAnterior(t *testing.T) {
	fake := &fakeCatalogAPI{recent: []entity.Product{{ID: 6, Nombre: "Reloj"}}}
	repo := NewProductRepository(fake)

	_, err := repo.RecentProducts(context.Background())
	require.NoError(t, err)

	fake.err = errors.New("HTTP 500")
	_, err = repo.SearchProducts(context.Background(), "laptop", 0, 10)
	require.Error(t, err)

	got := repo.Products().Get()
	require.Len(t, got, 1)
	assert.Equal(t, "Reloj", got[0].Nombre)
}
