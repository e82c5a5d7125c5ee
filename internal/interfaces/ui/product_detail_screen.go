package ui

import (
	"context"

	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain"
)

// ProductDetailScreen detalle de producto con acción de agregar al carrito.
type ProductDetailScreen struct {
	screenState
	products *repository.ProductRepository
	cart     *repository.CartRepository
	users    *repository.UserRepository
}

// NewProductDetailScreen construye la pantalla.
func NewProductDetailScreen(
	products *repository.ProductRepository,
	cart *repository.CartRepository,
	users *repository.UserRepository,
) *ProductDetailScreen {
	return &ProductDetailScreen{products: products, cart: cart, users: users}
}

// Load carga el producto a mostrar.
func (s *ProductDetailScreen) Load(ctx context.Context, productID int) error {
	if !s.begin() {
		return nil
	}
	_, err := s.products.GetProduct(ctx, productID)
	s.finish(err)
	return err
}

// AddToCart agrega el producto al carrito del usuario en sesión.
func (s *ProductDetailScreen) AddToCart(ctx context.Context, productID, quantity int) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		user := s.users.CurrentUser().Get()
		if user == nil {
			return domain.ErrSesionRequerida
		}
		if quantity <= 0 {
			quantity = 1
		}
		_, err := s.cart.AddProduct(ctx, user.ID, productID, quantity)
		return err
	}()

	s.finish(err)
	return err
}
