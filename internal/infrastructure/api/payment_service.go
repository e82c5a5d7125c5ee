package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

var _ ports.PaymentAPI = (*PaymentService)(nil)

// PaymentService acceso al recurso /pagos.
type PaymentService struct {
	client *Client
}

// NewPaymentService construye el servicio.
func NewPaymentService(client *Client) *PaymentService {
	return &PaymentService{client: client}
}

// Process procesa el pago de un pedido con los datos de tarjeta y envío dados.
func (s *PaymentService) Process(ctx context.Context, userID, orderID int, method string, card entity.CardDetails, shipping entity.ShippingDetails) (entity.PaymentResult, error) {
	q := url.Values{
		"usuarioId":        {strconv.Itoa(userID)},
		"pedidoId":         {strconv.Itoa(orderID)},
		"metodoPago":       {method},
		"direccionEnvio":   {shipping.DireccionEnvio},
		"telefonoContacto": {shipping.TelefonoContacto},
	}
	var out entity.PaymentResult
	err := s.client.Post(ctx, "/pagos/procesar", q, card, &out)
	return out, err
}

// GetPayment obtiene un pago por id.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID int) (entity.Payment, error) {
	var out entity.Payment
	err := s.client.Get(ctx, "/pagos/"+strconv.Itoa(paymentID), nil, &out)
	return out, err
}

// History obtiene el historial de pagos del usuario.
func (s *PaymentService) History(ctx context.Context, userID int) (entity.PaymentHistory, error) {
	var out entity.PaymentHistory
	err := s.client.Get(ctx, "/pagos/usuario/"+strconv.Itoa(userID), nil, &out)
	return out, err
}

// Refund solicita el reembolso de un pago.
func (s *PaymentService) Refund(ctx context.Context, paymentID int, reason string) (entity.RefundResult, error) {
	var out entity.RefundResult
	err := s.client.Post(ctx, "/pagos/reembolso/"+strconv.Itoa(paymentID), nil, entity.RefundRequest{Motivo: reason}, &out)
	return out, err
}
