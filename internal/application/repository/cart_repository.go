package repository

import (
	"context"
	"sync"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// CartRepository mantiene el último carrito reportado por el backend.
// Lecturas y mutaciones convergen en publicar el carrito completo que
// devuelve el servidor; el cliente nunca calcula totales ni subtotales.
type CartRepository struct {
	carts ports.CartAPI

	// El mutex serializa las mutaciones del carrito: dos clics rápidos de
	// "aumentar cantidad" se aplican en orden de llegada y la respuesta de
	// la primera nunca pisa a la de la segunda.
	mu   sync.Mutex
	cart *Observable[*entity.Cart]
}

// NewCartRepository construye el repositorio.
func NewCartRepository(carts ports.CartAPI) *CartRepository {
	return &CartRepository{
		carts: carts,
		cart:  NewObservable[*entity.Cart](nil),
	}
}

// Cart celda observable con el último carrito conocido (nil sin datos).
func (r *CartRepository) Cart() *Observable[*entity.Cart] {
	return r.cart
}

// GetUserCart obtiene y publica el carrito del usuario.
func (r *CartRepository) GetUserCart(ctx context.Context, userID int) (entity.Cart, error) {
	return r.apply(func() (entity.Cart, error) {
		return r.carts.GetUserCart(ctx, userID)
	})
}

// AddProduct agrega un producto. Si el backend fusiona la línea existente o
// crea una nueva es decisión del servidor; se publica lo que devuelva.
func (r *CartRepository) AddProduct(ctx context.Context, userID, productID, quantity int) (entity.Cart, error) {
	return r.apply(func() (entity.Cart, error) {
		return r.carts.AddProduct(ctx, userID, productID, quantity)
	})
}

// UpdateQuantity fija la cantidad de un producto.
func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, productID, quantity int) (entity.Cart, error) {
	return r.apply(func() (entity.Cart, error) {
		return r.carts.UpdateQuantity(ctx, userID, productID, quantity)
	})
}

// RemoveProduct elimina una línea del carrito.
func (r *CartRepository) RemoveProduct(ctx context.Context, userID, productID int) (entity.Cart, error) {
	return r.apply(func() (entity.Cart, error) {
		return r.carts.RemoveProduct(ctx, userID, productID)
	})
}

// Clear vacía el carrito.
func (r *CartRepository) Clear(ctx context.Context, userID int) (entity.Cart, error) {
	return r.apply(func() (entity.Cart, error) {
		return r.carts.Clear(ctx, userID)
	})
}

// apply ejecuta una operación del servicio bajo el mutex y publica el
// resultado solo si fue exitosa.
func (r *CartRepository) apply(op func() (entity.Cart, error)) (entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, err := op()
	if err != nil {
		return entity.Cart{}, err
	}
	r.cart.Set(&cart)
	return cart, nil
}
