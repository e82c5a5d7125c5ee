package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito. Subtotal lo calcula el backend; el cliente no lo rederiva.
type CartItem struct {
	ID             int             `json:"id,omitempty"`
	ProductoID     int             `json:"productoId"`
	ProductoNombre string          `json:"productoNombre"`
	ProductoImagen string          `json:"productoImagen"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Cantidad       int             `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// Cart carrito de un usuario. Total es el que reporta el backend: tras cada
// mutación el servidor devuelve el carrito completo y ese estado es la única
// fuente de verdad.
type Cart struct {
	ID        int             `json:"id,omitempty"`
	UsuarioID int             `json:"usuarioId"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
}

// IsEmpty indica si el carrito no tiene líneas.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CantidadDe devuelve la cantidad actual del producto en el carrito (0 si no está).
func (c Cart) CantidadDe(productoID int) int {
	for _, it := range c.Items {
		if it.ProductoID == productoID {
			return it.Cantidad
		}
	}
	return 0
}
