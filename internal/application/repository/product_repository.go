package repository

import (
	"context"
	"sync"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// ProductRepository mantiene el último listado del catálogo y el producto
// seleccionado. Cada consulta exitosa reemplaza el listado publicado.
type ProductRepository struct {
	catalog ports.CatalogAPI

	mu       sync.Mutex
	products *Observable[[]entity.Product]
	selected *Observable[*entity.Product]
}

// NewProductRepository construye el repositorio.
func NewProductRepository(catalog ports.CatalogAPI) *ProductRepository {
	return &ProductRepository{
		catalog:  catalog,
		products: NewObservable([]entity.Product{}),
		selected: NewObservable[*entity.Product](nil),
	}
}

// Products celda observable con el último listado publicado.
func (r *ProductRepository) Products() *Observable[[]entity.Product] {
	return r.products
}

// Selected celda observable con el producto en detalle (nil sin selección).
func (r *ProductRepository) Selected() *Observable[*entity.Product] {
	return r.selected
}

// ListProducts lista el catálogo y publica la página obtenida.
func (r *ProductRepository) ListProducts(ctx context.Context, page, size int, sort string) (entity.ProductPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp, err := r.catalog.ListProducts(ctx, page, size, sort)
	if err != nil {
		return entity.ProductPage{}, err
	}
	r.products.Set(resp.Productos)
	return resp, nil
}

// GetProduct obtiene un producto por id y lo publica como seleccionado.
func (r *ProductRepository) GetProduct(ctx context.Context, id int) (entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.catalog.GetProduct(ctx, id)
	if err != nil {
		return entity.Product{}, err
	}
	r.selected.Set(&p)
	return p, nil
}

// SearchProducts busca por palabra clave y publica los resultados.
func (r *ProductRepository) SearchProducts(ctx context.Context, keyword string, page, size int) (entity.ProductPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp, err := r.catalog.SearchProducts(ctx, keyword, page, size)
	if err != nil {
		return entity.ProductPage{}, err
	}
	r.products.Set(resp.Productos)
	return resp, nil
}

// ProductsByStore lista los productos de una tienda y los publica.
func (r *ProductRepository) ProductsByStore(ctx context.Context, storeID, page, size int) (entity.ProductPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp, err := r.catalog.ProductsByStore(ctx, storeID, page, size)
	if err != nil {
		return entity.ProductPage{}, err
	}
	r.products.Set(resp.Productos)
	return resp, nil
}

// ProductsByCategory lista los productos de una categoría y los publica.
func (r *ProductRepository) ProductsByCategory(ctx context.Context, categoryID, page, size int) (entity.ProductPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp, err := r.catalog.ProductsByCategory(ctx, categoryID, page, size)
	if err != nil {
		return entity.ProductPage{}, err
	}
	r.products.Set(resp.Productos)
	return resp, nil
}

// RecentProducts obtiene los productos recientes y los publica.
func (r *ProductRepository) RecentProducts(ctx context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.catalog.RecentProducts(ctx)
	if err != nil {
		return nil, err
	}
	r.products.Set(products)
	return products, nil
}
