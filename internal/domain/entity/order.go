package entity

import "github.com/shopspring/decimal"

// Order pedido: snapshot de las líneas del carrito al momento del checkout,
// más datos de envío y el pago embebido si ya fue procesado.
type Order struct {
	ID               int             `json:"id,omitempty"`
	UsuarioID        int             `json:"usuarioId"`
	UsuarioNombre    string          `json:"usuarioNombre,omitempty"`
	Items            []CartItem      `json:"items"`
	Total            decimal.Decimal `json:"total"`
	FechaCreacion    string          `json:"fechaCreacion,omitempty"`
	Estado           string          `json:"estado"`
	DireccionEnvio   string          `json:"direccionEnvio"`
	TelefonoContacto string          `json:"telefonoContacto"`
	Pago             *Payment        `json:"pago,omitempty"`
}

// Payment pago asociado a un pedido.
type Payment struct {
	ID             int             `json:"id,omitempty"`
	Monto          decimal.Decimal `json:"monto"`
	MetodoPago     string          `json:"metodoPago"`
	FechaPago      string          `json:"fechaPago,omitempty"`
	ReferenciaPago string          `json:"referenciaPago,omitempty"`
	Estado         string          `json:"estado"`
	PedidoID       int             `json:"pedidoId,omitempty"`
}

// ShippingDetails datos de envío del checkout; el backend los copia al pedido.
type ShippingDetails struct {
	DireccionEnvio   string `json:"direccionEnvio"`
	TelefonoContacto string `json:"telefonoContacto"`
}

// CardDetails datos de tarjeta para POST /pagos/procesar. Nunca se almacenan.
type CardDetails struct {
	NumeroTarjeta   string `json:"numeroTarjeta"`
	CVV             string `json:"cvv"`
	FechaExpiracion string `json:"fechaExpiracion"`
	NombreTitular   string `json:"nombreTitular"`
}

// PaymentResult respuesta del procesamiento de un pago.
type PaymentResult struct {
	Pedido  Order  `json:"pedido"`
	Mensaje string `json:"mensaje"`
	Estado  string `json:"estado"`
}

// PaymentHistoryEntry un pago del historial, con el estado del pedido asociado.
// El backend lo expone como objeto plano; se tipa aquí en lugar de usar mapas.
type PaymentHistoryEntry struct {
	ID             int             `json:"id"`
	PedidoID       int             `json:"pedidoId"`
	Monto          decimal.Decimal `json:"monto"`
	MetodoPago     string          `json:"metodoPago"`
	FechaPago      string          `json:"fechaPago,omitempty"`
	ReferenciaPago string          `json:"referenciaPago,omitempty"`
	Estado         string          `json:"estado"`
	EstadoPedido   string          `json:"estadoPedido,omitempty"`
}

// PaymentHistory historial de pagos de un usuario.
type PaymentHistory struct {
	Pagos         []PaymentHistoryEntry `json:"pagos"`
	TotalPagado   decimal.Decimal       `json:"totalPagado"`
	CantidadPagos int                   `json:"cantidadPagos"`
}

// RefundRequest cuerpo de POST /pagos/reembolso/{id}.
type RefundRequest struct {
	Motivo string `json:"motivo"`
}

// RefundResult resultado de un reembolso.
type RefundResult struct {
	Mensaje string   `json:"mensaje"`
	Estado  string   `json:"estado"`
	Pago    *Payment `json:"pago,omitempty"`
}
