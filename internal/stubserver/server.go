// Package stubserver implementa un backend de desarrollo en memoria con la
// misma superficie HTTP que el backend real. Permite trabajar en el cliente
// y correr pruebas de integración sin levantar el servicio remoto.
package stubserver

import (
	"net"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bugabuga/appecommerce/pkg/logger"
)

// Server backend stub sobre Fiber con estado en memoria.
type Server struct {
	app      *fiber.App
	log      *logger.Logger
	state    *state
	validate *validator.Validate
}

// New construye el servidor con el catálogo de ejemplo ya sembrado.
func New(log *logger.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "appecommerce-stub",
		DisableStartupMessage: true,
		// El cliente percent-encodea rutas no ASCII (/rese%C3%B1as); hay
		// que decodificar antes de enrutar, como hace el backend real.
		UnescapePath: true,
	})
	app.Use(recover.New())

	s := &Server{
		app:      app,
		log:      log,
		state:    newState(),
		validate: validator.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	auth := api.Group("/auth-simple")
	auth.Post("/registro", s.handleRegister)
	auth.Post("/login", s.handleLogin)
	auth.Get("/perfil", s.handleGetProfile)
	auth.Put("/perfil/:id", s.handleUpdateProfile)

	catalog := api.Group("/catalogo")
	catalog.Get("/productos", s.handleListProducts)
	catalog.Get("/productos/recientes", s.handleRecentProducts)
	catalog.Get("/productos/buscar", s.handleSearchProducts)
	catalog.Get("/productos/:id", s.handleGetProduct)
	catalog.Get("/tiendas/:storeId/productos", s.handleProductsByStore)
	catalog.Get("/categorias/:categoryId/productos", s.handleProductsByCategory)

	cart := api.Group("/carrito")
	cart.Post("/agregar", s.handleCartAdd)
	cart.Put("/actualizar", s.handleCartUpdate)
	cart.Delete("/eliminar", s.handleCartRemove)
	cart.Delete("/vaciar/:userId", s.handleCartClear)
	cart.Get("/:userId", s.handleCartGet)

	payments := api.Group("/pagos")
	payments.Post("/procesar", s.handleProcessPayment)
	payments.Get("/usuario/:userId", s.handlePaymentHistory)
	payments.Post("/reembolso/:id", s.handleRefund)
	payments.Get("/:id", s.handleGetPayment)

	reviews := api.Group("/reseñas")
	reviews.Get("/producto/:productId", s.handleProductReviews)
	reviews.Get("/usuario/:userId", s.handleUserReviews)
	reviews.Post("/", s.handleCreateReview)
	reviews.Put("/:id", s.handleUpdateReview)
	reviews.Delete("/:id", s.handleDeleteReview)
}

// Listen sirve en la dirección dada hasta que se cierre.
func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("stub server escuchando")
	return s.app.Listen(addr)
}

// Serve sirve sobre un listener ya abierto. Para tests de integración con
// puerto efímero.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown apaga el servidor ordenadamente.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorResponse cuerpo de error HTTP del stub.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func fail(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(errorResponse{Code: code, Message: msg})
}
