package stubserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

func (s *Server) handleCartGet(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "userId inválido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return c.JSON(*s.state.cartFor(userID))
}

// handleCartAdd agrega un producto. Si la línea ya existe las cantidades se
// fusionan; el cliente acepta lo que el servidor devuelva.
func (s *Server) handleCartAdd(c *fiber.Ctx) error {
	userID := c.QueryInt("usuarioId")
	productID := c.QueryInt("productoId")
	quantity := c.QueryInt("cantidad", 1)
	if userID == 0 || productID == 0 || quantity <= 0 {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "usuarioId, productoId y cantidad son requeridos")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p := s.state.findProduct(productID)
	if p == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}

	cart := s.state.cartFor(userID)
	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductoID == productID {
			cart.Items[i].Cantidad += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, entity.CartItem{
			ID:             s.state.id(),
			ProductoID:     p.ID,
			ProductoNombre: p.Nombre,
			ProductoImagen: p.ImagenURL,
			PrecioUnitario: p.Precio,
			Cantidad:       quantity,
		})
	}
	recalc(cart)
	return c.JSON(*cart)
}

func (s *Server) handleCartUpdate(c *fiber.Ctx) error {
	userID := c.QueryInt("usuarioId")
	productID := c.QueryInt("productoId")
	quantity := c.QueryInt("cantidad")
	if userID == 0 || productID == 0 || quantity <= 0 {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "usuarioId, productoId y cantidad son requeridos")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	cart := s.state.cartFor(userID)
	for i := range cart.Items {
		if cart.Items[i].ProductoID == productID {
			cart.Items[i].Cantidad = quantity
			recalc(cart)
			return c.JSON(*cart)
		}
	}
	return fail(c, fiber.StatusNotFound, "NOT_FOUND", "el producto no está en el carrito")
}

func (s *Server) handleCartRemove(c *fiber.Ctx) error {
	userID := c.QueryInt("usuarioId")
	productID := c.QueryInt("productoId")
	if userID == 0 || productID == 0 {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "usuarioId y productoId son requeridos")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	cart := s.state.cartFor(userID)
	for i := range cart.Items {
		if cart.Items[i].ProductoID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			recalc(cart)
			return c.JSON(*cart)
		}
	}
	return fail(c, fiber.StatusNotFound, "NOT_FOUND", "el producto no está en el carrito")
}

func (s *Server) handleCartClear(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "userId inválido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	cart := s.state.cartFor(userID)
	cart.Items = []entity.CartItem{}
	recalc(cart)
	return c.JSON(*cart)
}
