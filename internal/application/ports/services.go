// Package ports define las interfaces que la capa de aplicación espera de
// la infraestructura. Los repositorios dependen de estos puertos, no de la
// implementación HTTP concreta.
package ports

import (
	"context"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// AuthAPI operaciones del recurso auth-simple.
type AuthAPI interface {
	Register(ctx context.Context, user entity.User) (entity.User, error)
	Login(ctx context.Context, email, password string) (entity.LoginResponse, error)
	GetProfile(ctx context.Context, userID int) (entity.User, error)
	UpdateProfile(ctx context.Context, userID int, user entity.User) (entity.User, error)
}

// CatalogAPI operaciones de consulta del catálogo.
type CatalogAPI interface {
	ListProducts(ctx context.Context, page, size int, sort string) (entity.ProductPage, error)
	GetProduct(ctx context.Context, id int) (entity.Product, error)
	SearchProducts(ctx context.Context, keyword string, page, size int) (entity.ProductPage, error)
	ProductsByStore(ctx context.Context, storeID, page, size int) (entity.ProductPage, error)
	ProductsByCategory(ctx context.Context, categoryID, page, size int) (entity.ProductPage, error)
	RecentProducts(ctx context.Context) ([]entity.Product, error)
}

// CartAPI operaciones del carrito. Toda mutación devuelve el carrito
// completo actualizado; el cliente nunca recalcula totales.
type CartAPI interface {
	GetUserCart(ctx context.Context, userID int) (entity.Cart, error)
	AddProduct(ctx context.Context, userID, productID, quantity int) (entity.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID, quantity int) (entity.Cart, error)
	RemoveProduct(ctx context.Context, userID, productID int) (entity.Cart, error)
	Clear(ctx context.Context, userID int) (entity.Cart, error)
}

// PaymentAPI operaciones de pagos.
type PaymentAPI interface {
	Process(ctx context.Context, userID, orderID int, method string, card entity.CardDetails, shipping entity.ShippingDetails) (entity.PaymentResult, error)
	GetPayment(ctx context.Context, paymentID int) (entity.Payment, error)
	History(ctx context.Context, userID int) (entity.PaymentHistory, error)
	Refund(ctx context.Context, paymentID int, reason string) (entity.RefundResult, error)
}

// ReviewAPI operaciones de reseñas.
type ReviewAPI interface {
	ProductReviews(ctx context.Context, productID, page, size int, sort, direction string) (entity.ReviewPage, error)
	UserReviews(ctx context.Context, userID, page, size int) (entity.ReviewPage, error)
	Create(ctx context.Context, req entity.ReviewRequest) (entity.Review, error)
	Update(ctx context.Context, reviewID, rating int, comment string) (entity.Review, error)
	Delete(ctx context.Context, reviewID int) error
}
