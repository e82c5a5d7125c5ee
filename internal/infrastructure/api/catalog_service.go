package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

var _ ports.CatalogAPI = (*CatalogService)(nil)

// Valores por defecto de paginación del catálogo.
const (
	DefaultPageSize = 10
	DefaultSort     = "id"
)

// CatalogService acceso de solo lectura al recurso /catalogo.
type CatalogService struct {
	client *Client
}

// NewCatalogService construye el servicio.
func NewCatalogService(client *Client) *CatalogService {
	return &CatalogService{client: client}
}

// ListProducts lista el catálogo paginado.
func (s *CatalogService) ListProducts(ctx context.Context, page, size int, sort string) (entity.ProductPage, error) {
	if sort == "" {
		sort = DefaultSort
	}
	q := pageQuery(page, size)
	q.Set("sort", sort)

	var out entity.ProductPage
	err := s.client.Get(ctx, "/catalogo/productos", q, &out)
	return out, err
}

// GetProduct obtiene un producto por id.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (entity.Product, error) {
	var out entity.Product
	err := s.client.Get(ctx, "/catalogo/productos/"+strconv.Itoa(id), nil, &out)
	return out, err
}

// SearchProducts busca productos por palabra clave.
func (s *CatalogService) SearchProducts(ctx context.Context, keyword string, page, size int) (entity.ProductPage, error) {
	q := pageQuery(page, size)
	q.Set("keyword", keyword)

	var out entity.ProductPage
	err := s.client.Get(ctx, "/catalogo/productos/buscar", q, &out)
	return out, err
}

// ProductsByStore lista los productos de una tienda.
func (s *CatalogService) ProductsByStore(ctx context.Context, storeID, page, size int) (entity.ProductPage, error) {
	var out entity.ProductPage
	path := "/catalogo/tiendas/" + strconv.Itoa(storeID) + "/productos"
	err := s.client.Get(ctx, path, pageQuery(page, size), &out)
	return out, err
}

// ProductsByCategory lista los productos de una categoría.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID, page, size int) (entity.ProductPage, error) {
	var out entity.ProductPage
	path := "/catalogo/categorias/" + strconv.Itoa(categoryID) + "/productos"
	err := s.client.Get(ctx, path, pageQuery(page, size), &out)
	return out, err
}

// RecentProducts obtiene los productos más recientes (sin paginar).
func (s *CatalogService) RecentProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	err := s.client.Get(ctx, "/catalogo/productos/recientes", nil, &out)
	return out, err
}

// pageQuery arma los parámetros de paginación con los defaults del backend.
func pageQuery(page, size int) url.Values {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
}
