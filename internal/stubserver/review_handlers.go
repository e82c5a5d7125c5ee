package stubserver

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

func reviewPage(items []entity.Review, page, size int, promedio float64) entity.ReviewPage {
	pageItems, current, total, pages := paginate(items, page, size)
	if pageItems == nil {
		pageItems = []entity.Review{}
	}
	return entity.ReviewPage{
		Reseñas:              pageItems,
		CurrentPage:          current,
		TotalItems:           total,
		TotalPages:           pages,
		CalificacionPromedio: promedio,
	}
}

func (s *Server) handleProductReviews(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "productId inválido")
	}
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	direction := c.Query("direction", "desc")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	items := s.state.productReviews(productID)
	if direction == "asc" {
		sort.Slice(items, func(i, j int) bool { return items[i].FechaCreacion < items[j].FechaCreacion })
	}

	var promedio float64
	if p := s.state.findProduct(productID); p != nil {
		promedio = p.CalificacionPromedio
	}
	return c.JSON(reviewPage(items, page, size, promedio))
}

func (s *Server) handleUserReviews(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "userId inválido")
	}
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var items []entity.Review
	for _, r := range s.state.reviews {
		if r.Usuario != nil && r.Usuario.ID == userID {
			items = append(items, *r)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].FechaCreacion > items[j].FechaCreacion })

	return c.JSON(reviewPage(items, page, size, 0))
}

func (s *Server) handleCreateReview(c *fiber.Ctx) error {
	var in entity.ReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Calificacion < 1 || in.Calificacion > 5 {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "la calificación debe estar entre 1 y 5")
	}
	if in.Comentario == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "comentario es requerido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.findProduct(in.Producto.ID) == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}

	usuario := in.Usuario
	producto := in.Producto
	review := &entity.Review{
		ID:            s.state.id(),
		Calificacion:  in.Calificacion,
		Comentario:    in.Comentario,
		Usuario:       &usuario,
		Producto:      &producto,
		FechaCreacion: now(),
	}
	s.state.reviews[review.ID] = review
	s.state.refreshProductRating(producto.ID)

	return c.Status(fiber.StatusCreated).JSON(*review)
}

func (s *Server) handleUpdateReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "id inválido")
	}

	var in entity.ReviewUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Calificacion < 1 || in.Calificacion > 5 {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "la calificación debe estar entre 1 y 5")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	review, ok := s.state.reviews[id]
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "reseña no encontrada")
	}
	review.Calificacion = in.Calificacion
	review.Comentario = in.Comentario
	if review.Producto != nil {
		s.state.refreshProductRating(review.Producto.ID)
	}
	return c.JSON(*review)
}

func (s *Server) handleDeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "id inválido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	review, ok := s.state.reviews[id]
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "reseña no encontrada")
	}
	delete(s.state.reviews, id)
	if review.Producto != nil {
		s.state.refreshProductRating(review.Producto.ID)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
