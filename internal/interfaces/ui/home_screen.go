package ui

import (
	"context"
	"strings"

	"github.com/bugabuga/appecommerce/internal/application/repository"
)

// HomeScreen pantalla principal: catálogo y buscador.
type HomeScreen struct {
	screenState
	products *repository.ProductRepository
}

// NewHomeScreen construye la pantalla.
func NewHomeScreen(products *repository.ProductRepository) *HomeScreen {
	return &HomeScreen{products: products}
}

// Load carga inicial: productos recientes.
func (s *HomeScreen) Load(ctx context.Context) error {
	if !s.begin() {
		return nil
	}
	_, err := s.products.RecentProducts(ctx)
	s.finish(err)
	return err
}

// Search busca por palabra clave. La búsqueda vacía vuelve a los productos
// recientes en lugar de consultar el buscador.
func (s *HomeScreen) Search(ctx context.Context, keyword string) error {
	if !s.begin() {
		return nil
	}

	keyword = strings.TrimSpace(keyword)
	var err error
	if keyword == "" {
		_, err = s.products.RecentProducts(ctx)
	} else {
		_, err = s.products.SearchProducts(ctx, keyword, 0, 0)
	}

	s.finish(err)
	return err
}

// Browse lista una página del catálogo completo.
func (s *HomeScreen) Browse(ctx context.Context, page, size int) error {
	if !s.begin() {
		return nil
	}
	_, err := s.products.ListProducts(ctx, page, size, "")
	s.finish(err)
	return err
}

// ByCategory lista los productos de una categoría.
func (s *HomeScreen) ByCategory(ctx context.Context, categoryID, page int) error {
	if !s.begin() {
		return nil
	}
	_, err := s.products.ProductsByCategory(ctx, categoryID, page, 0)
	s.finish(err)
	return err
}

// ByStore lista los productos de una tienda.
func (s *HomeScreen) ByStore(ctx context.Context, storeID, page int) error {
	if !s.begin() {
		return nil
	}
	_, err := s.products.ProductsByStore(ctx, storeID, page, 0)
	s.finish(err)
	return err
}
