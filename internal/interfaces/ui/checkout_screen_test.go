package ui

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// fakeCarts puerto de carrito para el flujo de checkout.
type fakeCarts struct {
	cart   entity.Cart
	clears int
}

func (f *fakeCarts) GetUserCart(context.Context, int) (entity.Cart, error) {
	return f.cart, nil
}

func (f *fakeCarts) AddProduct(context.Context, int, int, int) (entity.Cart, error) {
	return f.cart, nil
}

func (f *fakeCarts) UpdateQuantity(context.Context, int, int, int) (entity.Cart, error) {
	return f.cart, nil
}

func (f *fakeCarts) RemoveProduct(context.Context, int, int) (entity.Cart, error) {
	return f.cart, nil
}

func (f *fakeCarts) Clear(context.Context, int) (entity.Cart, error) {
	f.clears++
	return entity.Cart{UsuarioID: f.cart.UsuarioID, Items: []entity.CartItem{}}, nil
}

// fakePayments puerto de pagos con contador; captura los datos de envío.
type fakePayments struct {
	processed int
	shipping  entity.ShippingDetails
	result    entity.PaymentResult
}

func (f *fakePayments) Process(_ context.Context, _, _ int, _ string, _ entity.CardDetails, shipping entity.ShippingDetails) (entity.PaymentResult, error) {
	f.processed++
	f.shipping = shipping
	return f.result, nil
}

func (f *fakePayments) GetPayment(context.Context, int) (entity.Payment, error) {
	return entity.Payment{}, nil
}

func (f *fakePayments) History(context.Context, int) (entity.PaymentHistory, error) {
	return entity.PaymentHistory{}, nil
}

func (f *fakePayments) Refund(context.Context, int, string) (entity.RefundResult, error) {
	return entity.RefundResult{}, nil
}

func checkoutFixture(t *testing.T, loggedIn bool, cartItems ...entity.CartItem) (*CheckoutScreen, *fakeCarts, *fakePayments, *repository.CartRepository) {
	t.Helper()

	auth := &fakeAuth{user: entity.User{ID: 1, Nombre: "Ana"}}
	users := repository.NewUserRepository(auth)
	if loggedIn {
		_, err := users.Login(context.Background(), "ana@mail.com", "secreta")
		require.NoError(t, err)
	}

	carts := &fakeCarts{cart: entity.Cart{
		ID: 1, UsuarioID: 1, Items: cartItems, Total: decimal.NewFromInt(100),
	}}
	cartRepo := repository.NewCartRepository(carts)
	if loggedIn && len(cartItems) > 0 {
		_, err := cartRepo.GetUserCart(context.Background(), 1)
		require.NoError(t, err)
	}

	payments := &fakePayments{result: entity.PaymentResult{
		Pedido: entity.Order{ID: 9, Estado: "PAGADO"},
		Estado: "APROBADO",
	}}
	return NewCheckoutScreen(cartRepo, users, payments), carts, payments, cartRepo
}

func validForm() CheckoutForm {
	return CheckoutForm{
		DireccionEnvio:   "Calle 1 # 2-3",
		TelefonoContacto: "3001234567",
		MetodoPago:       "TARJETA",
		NumeroTarjeta:    "4111111111111111",
		CVV:              "123",
		FechaExpiracion:  "12/27",
		NombreTitular:    "ANA GOMEZ",
	}
}

func TestCheckoutScreen_RequiereSesion(t *testing.T) {
	screen, _, payments, _ := checkoutFixture(t, false)

	err := screen.Confirm(context.Background(), validForm())
	require.ErrorIs(t, err, domain.ErrSesionRequerida)
	assert.Equal(t, 0, payments.processed)
}

func TestCheckoutScreen_CarritoVacioNoProcesa(t *testing.T) {
	screen, _, payments, _ := checkoutFixture(t, true)

	err := screen.Confirm(context.Background(), validForm())
	require.ErrorIs(t, err, domain.ErrCarritoVacio)
	assert.Equal(t, 0, payments.processed)
}

func TestCheckoutScreen_FormularioIncompletoNoProcesa(t *testing.T) {
	screen, _, payments, _ := checkoutFixture(t, true, entity.CartItem{ProductoID: 5, Cantidad: 1})

	form := validForm()
	form.CVV = ""
	err := screen.Confirm(context.Background(), form)
	require.ErrorIs(t, err, domain.ErrCamposIncompletos)
	assert.Equal(t, 0, payments.processed)
}

func TestCheckoutScreen_PagoExitosoVaciaCarrito(t *testing.T) {
	screen, carts, payments, cartRepo := checkoutFixture(t, true, entity.CartItem{ProductoID: 5, Cantidad: 2})

	err := screen.Confirm(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, 1, payments.processed)
	assert.Equal(t, 1, carts.clears)
	assert.Equal(t, "Calle 1 # 2-3", payments.shipping.DireccionEnvio, "los datos de envío viajan con el pago")
	assert.Equal(t, "3001234567", payments.shipping.TelefonoContacto)

	result := screen.Result()
	require.NotNil(t, result)
	assert.Equal(t, 9, result.Pedido.ID)

	published := cartRepo.Cart().Get()
	require.NotNil(t, published)
	assert.True(t, published.IsEmpty(), "tras pagar, el carrito publicado queda vacío")
}
