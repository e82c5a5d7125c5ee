package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// fakeCartAPI respuestas programadas para el puerto del carrito.
type fakeCartAPI struct {
	cart  entity.Cart
	err   error
	calls int
}

func (f *fakeCartAPI) GetUserCart(context.Context, int) (entity.Cart, error) {
	f.calls++
	return f.cart, f.err
}

func (f *fakeCartAPI) AddProduct(context.Context, int, int, int) (entity.Cart, error) {
	f.calls++
	return f.cart, f.err
}

func (f *fakeCartAPI) UpdateQuantity(context.Context, int, int, int) (entity.Cart, error) {
	f.calls++
	return f.cart, f.err
}

func (f *fakeCartAPI) RemoveProduct(context.Context, int, int) (entity.Cart, error) {
	f.calls++
	return f.cart, f.err
}

func (f *fakeCartAPI) Clear(context.Context, int) (entity.Cart, error) {
	f.calls++
	return f.cart, f.err
}

func cartWith(total string, items ...entity.CartItem) entity.Cart {
	d, _ := decimal.NewFromString(total)
	return entity.Cart{ID: 1, UsuarioID: 1, Items: items, Total: d}
}

// Con servicio exitoso, el valor publicado es exactamente el que devolvió el
// backend y la operación lo devuelve también.
func TestCartRepository_ExitoPublicaValorDelServicio(t *testing.T) {
	want := cartWith("1199.98", entity.CartItem{ProductoID: 5, Cantidad: 2})
	fake := &fakeCartAPI{cart: want}
	repo := NewCartRepository(fake)

	got, err := repo.AddProduct(context.Background(), 1, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	published := repo.Cart().Get()
	require.NotNil(t, published)
	assert.Equal(t, want, *published)
}

// Con fallo del servicio, el valor publicado anterior queda intacto y la
// operación devuelve el error.
func TestCartRepository_FalloNoMutaEstado(t *testing.T) {
	previo := cartWith("149.99", entity.CartItem{ProductoID: 3, Cantidad: 1})
	fake := &fakeCartAPI{cart: previo}
	repo := NewCartRepository(fake)

	_, err := repo.GetUserCart(context.Background(), 1)
	require.NoError(t, err)
	versionAntes := repo.Cart().Version()

	fake.err = errors.New("timeout de red")
	_, err = repo.UpdateQuantity(context.Background(), 1, 3, 9)
	require.Error(t, err)

	published := repo.Cart().Get()
	require.NotNil(t, published)
	assert.Equal(t, previo, *published, "un fallo nunca aplica una mutación parcial")
	assert.Equal(t, versionAntes, repo.Cart().Version(), "un fallo no publica nada")
}

// Dos lecturas seguidas sin mutaciones publican el mismo carrito.
func TestCartRepository_GetUserCartIdempotente(t *testing.T) {
	cart := cartWith("24.50", entity.CartItem{ProductoID: 4, Cantidad: 1})
	fake := &fakeCartAPI{cart: cart}
	repo := NewCartRepository(fake)

	first, err := repo.GetUserCart(context.Background(), 1)
	require.NoError(t, err)
	second, err := repo.GetUserCart(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, cart, *repo.Cart().Get())
	assert.Equal(t, 2, fake.calls)
}

// El cliente no recalcula totales: publica el total del backend aunque no
// cuadre con la suma de subtotales.
func TestCartRepository_ConfiaEnTotalDelServidor(t *testing.T) {
	inconsistente := cartWith("999.99", entity.CartItem{
		ProductoID: 5, Cantidad: 1, Subtotal: decimal.NewFromInt(10),
	})
	fake := &fakeCartAPI{cart: inconsistente}
	repo := NewCartRepository(fake)

	got, err := repo.GetUserCart(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("999.99")))
}
