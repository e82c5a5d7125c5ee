package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

var _ ports.CartAPI = (*CartService)(nil)

// CartService acceso al recurso /carrito. Cada operación devuelve el
// carrito completo que reporta el backend.
type CartService struct {
	client *Client
}

// NewCartService construye el servicio.
func NewCartService(client *Client) *CartService {
	return &CartService{client: client}
}

// GetUserCart obtiene el carrito del usuario.
func (s *CartService) GetUserCart(ctx context.Context, userID int) (entity.Cart, error) {
	var out entity.Cart
	err := s.client.Get(ctx, "/carrito/"+strconv.Itoa(userID), nil, &out)
	return out, err
}

// AddProduct agrega un producto al carrito.
func (s *CartService) AddProduct(ctx context.Context, userID, productID, quantity int) (entity.Cart, error) {
	var out entity.Cart
	err := s.client.Post(ctx, "/carrito/agregar", cartQuery(userID, productID, quantity), nil, &out)
	return out, err
}

// UpdateQuantity fija la cantidad de un producto del carrito.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID, quantity int) (entity.Cart, error) {
	var out entity.Cart
	err := s.client.Put(ctx, "/carrito/actualizar", cartQuery(userID, productID, quantity), nil, &out)
	return out, err
}

// RemoveProduct elimina una línea del carrito.
func (s *CartService) RemoveProduct(ctx context.Context, userID, productID int) (entity.Cart, error) {
	q := url.Values{
		"usuarioId":  {strconv.Itoa(userID)},
		"productoId": {strconv.Itoa(productID)},
	}
	var out entity.Cart
	err := s.client.Delete(ctx, "/carrito/eliminar", q, &out)
	return out, err
}

// Clear vacía el carrito del usuario.
func (s *CartService) Clear(ctx context.Context, userID int) (entity.Cart, error) {
	var out entity.Cart
	err := s.client.Delete(ctx, "/carrito/vaciar/"+strconv.Itoa(userID), nil, &out)
	return out, err
}

func cartQuery(userID, productID, quantity int) url.Values {
	return url.Values{
		"usuarioId":  {strconv.Itoa(userID)},
		"productoId": {strconv.Itoa(productID)},
		"cantidad":   {strconv.Itoa(quantity)},
	}
}
