package ui

import (
	"context"
	"sync"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// CheckoutScreen pantalla de pago: resumen del carrito, datos de envío y
// tarjeta. Tras un pago exitoso vacía el carrito y guarda el resultado para
// la pantalla de confirmación.
type CheckoutScreen struct {
	screenState
	cart     *repository.CartRepository
	users    *repository.UserRepository
	payments ports.PaymentAPI

	resultMu sync.Mutex
	result   *entity.PaymentResult
}

// NewCheckoutScreen construye la pantalla.
func NewCheckoutScreen(
	cart *repository.CartRepository,
	users *repository.UserRepository,
	payments ports.PaymentAPI,
) *CheckoutScreen {
	return &CheckoutScreen{cart: cart, users: users, payments: payments}
}

// CheckoutForm datos de envío y tarjeta. Todos los campos son obligatorios.
type CheckoutForm struct {
	DireccionEnvio   string `validate:"required"`
	TelefonoContacto string `validate:"required"`
	MetodoPago       string `validate:"required"`
	NumeroTarjeta    string `validate:"required"`
	CVV              string `validate:"required"`
	FechaExpiracion  string `validate:"required"`
	NombreTitular    string `validate:"required"`
}

// Confirm procesa el pago del carrito actual. El backend crea el pedido a
// partir del carrito cuando pedidoId es cero.
func (s *CheckoutScreen) Confirm(ctx context.Context, form CheckoutForm) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		user := s.users.CurrentUser().Get()
		if user == nil {
			return domain.ErrSesionRequerida
		}
		cart := s.cart.Cart().Get()
		if cart == nil || cart.IsEmpty() {
			return domain.ErrCarritoVacio
		}
		if err := requiredFields(form); err != nil {
			return err
		}

		result, err := s.payments.Process(ctx, user.ID, 0, form.MetodoPago, entity.CardDetails{
			NumeroTarjeta:   form.NumeroTarjeta,
			CVV:             form.CVV,
			FechaExpiracion: form.FechaExpiracion,
			NombreTitular:   form.NombreTitular,
		}, entity.ShippingDetails{
			DireccionEnvio:   form.DireccionEnvio,
			TelefonoContacto: form.TelefonoContacto,
		})
		if err != nil {
			return err
		}

		s.resultMu.Lock()
		s.result = &result
		s.resultMu.Unlock()

		// El pedido quedó pagado; el carrito vuelve a vacío.
		_, err = s.cart.Clear(ctx, user.ID)
		return err
	}()

	s.finish(err)
	return err
}

// Result devuelve el resultado del último pago exitoso (nil si no hay).
func (s *CheckoutScreen) Result() *entity.PaymentResult {
	s.resultMu.Lock()
	defer s.resultMu.Unlock()
	return s.result
}
