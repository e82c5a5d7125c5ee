package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// fakeCatalog puerto de catálogo que distingue búsquedas de recientes.
type fakeCatalog struct {
	searches int
	recents  int
	page     entity.ProductPage
	recent   []entity.Product
}

func (f *fakeCatalog) ListProducts(context.Context, int, int, string) (entity.ProductPage, error) {
	return f.page, nil
}

func (f *fakeCatalog) GetProduct(context.Context, int) (entity.Product, error) {
	return entity.Product{}, nil
}

func (f *fakeCatalog) SearchProducts(context.Context, string, int, int) (entity.ProductPage, error) {
	f.searches++
	return f.page, nil
}

func (f *fakeCatalog) ProductsByStore(context.Context, int, int, int) (entity.ProductPage, error) {
	return f.page, nil
}

func (f *fakeCatalog) ProductsByCategory(context.Context, int, int, int) (entity.ProductPage, error) {
	return f.page, nil
}

func (f *fakeCatalog) RecentProducts(context.Context) ([]entity.Product, error) {
	f.recents++
	return f.recent, nil
}

// La búsqueda vacía (o de solo espacios) vuelve a los productos recientes en
// lugar de consultar el buscador.
func TestHomeScreen_BusquedaVaciaCaeEnRecientes(t *testing.T) {
	fake := &fakeCatalog{recent: []entity.Product{{ID: 6, Nombre: "Reloj Deportivo"}}}
	screen := NewHomeScreen(repository.NewProductRepository(fake))

	err := screen.Search(context.Background(), "   ")
	require.NoError(t, err)

	assert.Equal(t, 0, fake.searches)
	assert.Equal(t, 1, fake.recents)
}

func TestHomeScreen_BusquedaConKeywordUsaBuscador(t *testing.T) {
	fake := &fakeCatalog{page: entity.ProductPage{Productos: []entity.Product{{ID: 2, Nombre: "Laptop Pro"}}}}
	products := repository.NewProductRepository(fake)
	screen := NewHomeScreen(products)

	err := screen.Search(context.Background(), "laptop")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.searches)
	assert.Equal(t, 0, fake.recents)
	require.Len(t, products.Products().Get(), 1)
	assert.Equal(t, "Laptop Pro", products.Products().Get()[0].Nombre)
}
