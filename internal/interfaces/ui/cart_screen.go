package ui

import (
	"context"

	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// CartScreen pantalla del carrito: listado de líneas y ajuste de cantidades.
type CartScreen struct {
	screenState
	cart  *repository.CartRepository
	users *repository.UserRepository
}

// NewCartScreen construye la pantalla.
func NewCartScreen(cart *repository.CartRepository, users *repository.UserRepository) *CartScreen {
	return &CartScreen{cart: cart, users: users}
}

// Load obtiene el carrito del usuario en sesión.
func (s *CartScreen) Load(ctx context.Context) error {
	return s.run(func(userID int) error {
		_, err := s.cart.GetUserCart(ctx, userID)
		return err
	})
}

// Increase incrementa en uno la cantidad de un producto.
func (s *CartScreen) Increase(ctx context.Context, productID int) error {
	return s.run(func(userID int) error {
		qty := s.currentQuantity(productID) + 1
		_, err := s.cart.UpdateQuantity(ctx, userID, productID, qty)
		return err
	})
}

// Decrease reduce en uno la cantidad; en cero elimina la línea.
func (s *CartScreen) Decrease(ctx context.Context, productID int) error {
	return s.run(func(userID int) error {
		qty := s.currentQuantity(productID) - 1
		if qty <= 0 {
			_, err := s.cart.RemoveProduct(ctx, userID, productID)
			return err
		}
		_, err := s.cart.UpdateQuantity(ctx, userID, productID, qty)
		return err
	})
}

// Remove elimina la línea del producto.
func (s *CartScreen) Remove(ctx context.Context, productID int) error {
	return s.run(func(userID int) error {
		_, err := s.cart.RemoveProduct(ctx, userID, productID)
		return err
	})
}

// Clear vacía el carrito.
func (s *CartScreen) Clear(ctx context.Context) error {
	return s.run(func(userID int) error {
		_, err := s.cart.Clear(ctx, userID)
		return err
	})
}

// currentQuantity lee la cantidad del último carrito publicado.
func (s *CartScreen) currentQuantity(productID int) int {
	cart := s.cart.Cart().Get()
	if cart == nil {
		return 0
	}
	return cart.CantidadDe(productID)
}

// run ejecuta una acción del carrito exigiendo sesión iniciada.
func (s *CartScreen) run(op func(userID int) error) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		user := s.users.CurrentUser().Get()
		if user == nil {
			return domain.ErrSesionRequerida
		}
		return op(user.ID)
	}()

	s.finish(err)
	return err
}

// Snapshot devuelve el último carrito publicado (nil sin datos).
func (s *CartScreen) Snapshot() *entity.Cart {
	return s.cart.Cart().Get()
}
