package stubserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// handleProcessPayment crea el pedido a partir del carrito del usuario cuando
// pedidoId es cero y registra el pago aprobado.
func (s *Server) handleProcessPayment(c *fiber.Ctx) error {
	userID := c.QueryInt("usuarioId")
	orderID := c.QueryInt("pedidoId")
	method := c.Query("metodoPago")
	if userID == 0 || method == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "usuarioId y metodoPago son requeridos")
	}

	var card entity.CardDetails
	if err := c.BodyParser(&card); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if card.NumeroTarjeta == "" || card.CVV == "" || card.FechaExpiracion == "" || card.NombreTitular == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "datos de tarjeta incompletos")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec, ok := s.state.users[userID]
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "usuario no encontrado")
	}

	var order *entity.Order
	if orderID != 0 {
		order, ok = s.state.orders[orderID]
		if !ok {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "pedido no encontrado")
		}
	} else {
		cart := s.state.cartFor(userID)
		if len(cart.Items) == 0 {
			return fail(c, fiber.StatusBadRequest, "EMPTY_CART", "el carrito está vacío")
		}
		items := make([]entity.CartItem, len(cart.Items))
		copy(items, cart.Items)
		order = &entity.Order{
			ID:               s.state.id(),
			UsuarioID:        userID,
			UsuarioNombre:    rec.user.NombreCompleto(),
			Items:            items,
			Total:            cart.Total,
			FechaCreacion:    now(),
			Estado:           "PAGADO",
			DireccionEnvio:   c.Query("direccionEnvio"),
			TelefonoContacto: c.Query("telefonoContacto"),
		}
		s.state.orders[order.ID] = order
	}

	payment := &entity.Payment{
		ID:             s.state.id(),
		Monto:          order.Total,
		MetodoPago:     method,
		FechaPago:      now(),
		ReferenciaPago: "REF-" + uuid.NewString()[:8],
		Estado:         "APROBADO",
		PedidoID:       order.ID,
	}
	s.state.payments[payment.ID] = payment
	order.Estado = "PAGADO"
	order.Pago = payment

	return c.JSON(entity.PaymentResult{
		Pedido:  *order,
		Mensaje: fmt.Sprintf("Pago procesado con referencia %s", payment.ReferenciaPago),
		Estado:  payment.Estado,
	})
}

func (s *Server) handleGetPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "id inválido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p, ok := s.state.payments[id]
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "pago no encontrado")
	}
	return c.JSON(*p)
}

func (s *Server) handlePaymentHistory(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "userId inválido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	history := entity.PaymentHistory{
		Pagos:       []entity.PaymentHistoryEntry{},
		TotalPagado: decimal.Zero,
	}
	for _, p := range s.state.payments {
		order, ok := s.state.orders[p.PedidoID]
		if !ok || order.UsuarioID != userID {
			continue
		}
		history.Pagos = append(history.Pagos, entity.PaymentHistoryEntry{
			ID:             p.ID,
			PedidoID:       p.PedidoID,
			Monto:          p.Monto,
			MetodoPago:     p.MetodoPago,
			FechaPago:      p.FechaPago,
			ReferenciaPago: p.ReferenciaPago,
			Estado:         p.Estado,
			EstadoPedido:   order.Estado,
		})
		if p.Estado == "APROBADO" {
			history.TotalPagado = history.TotalPagado.Add(p.Monto)
		}
	}
	history.CantidadPagos = len(history.Pagos)
	return c.JSON(history)
}

func (s *Server) handleRefund(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "id inválido")
	}

	var in entity.RefundRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Motivo == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "motivo es requerido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p, ok := s.state.payments[id]
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "pago no encontrado")
	}
	if p.Estado == "REEMBOLSADO" {
		return fail(c, fiber.StatusConflict, "CONFLICT", "el pago ya fue reembolsado")
	}

	p.Estado = "REEMBOLSADO"
	if order, ok := s.state.orders[p.PedidoID]; ok {
		order.Estado = "REEMBOLSADO"
	}

	return c.JSON(entity.RefundResult{
		Mensaje: "Reembolso procesado",
		Estado:  p.Estado,
		Pago:    p,
	})
}
