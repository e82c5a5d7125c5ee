package stubserver

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

func productPage(items []entity.Product, page, size int) entity.ProductPage {
	pageItems, current, total, pages := paginate(items, page, size)
	return entity.ProductPage{
		Productos:   pageItems,
		CurrentPage: current,
		TotalItems:  total,
		TotalPages:  pages,
	}
}

func (s *Server) handleListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	sortKey := c.Query("sort", "id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	items := make([]entity.Product, len(s.state.products))
	copy(items, s.state.products)
	switch sortKey {
	case "precio":
		sort.Slice(items, func(i, j int) bool { return items[i].Precio.LessThan(items[j].Precio) })
	case "nombre":
		sort.Slice(items, func(i, j int) bool { return items[i].Nombre < items[j].Nombre })
	default:
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	}

	return c.JSON(productPage(items, page, size))
}

func (s *Server) handleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "id inválido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p := s.state.findProduct(id)
	if p == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}
	return c.JSON(*p)
}

func (s *Server) handleSearchProducts(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var items []entity.Product
	for _, p := range s.state.products {
		if keyword == "" || matches(p, keyword) {
			items = append(items, p)
		}
	}
	return c.JSON(productPage(items, page, size))
}

func (s *Server) handleProductsByStore(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "storeId inválido")
	}
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var items []entity.Product
	for _, p := range s.state.products {
		if p.TiendaID == storeID {
			items = append(items, p)
		}
	}
	return c.JSON(productPage(items, page, size))
}

func (s *Server) handleProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "categoryId inválido")
	}
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var items []entity.Product
	for _, p := range s.state.products {
		if p.CategoriaID == categoryID {
			items = append(items, p)
		}
	}
	return c.JSON(productPage(items, page, size))
}

// handleRecentProducts devuelve los últimos productos agregados, sin paginar.
func (s *Server) handleRecentProducts(c *fiber.Ctx) error {
	const recentLimit = 8

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	items := make([]entity.Product, len(s.state.products))
	copy(items, s.state.products)
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	if len(items) > recentLimit {
		items = items[:recentLimit]
	}
	return c.JSON(items)
}
