// Cliente de terminal para la plataforma de e-commerce. Arma la composición
// completa (transporte, servicios, repositorios, pantallas) y expone un menú
// simple; las pantallas son los view-models de internal/interfaces/ui y este
// frente solo las invoca y pinta su estado.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/infrastructure/api"
	"github.com/bugabuga/appecommerce/internal/interfaces/ui"
	"github.com/bugabuga/appecommerce/pkg/config"
	"github.com/bugabuga/appecommerce/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("base_url", cfg.API.BaseURL).
		Msg("iniciando cliente")

	client := api.New(api.Config{
		BaseURL:        cfg.API.BaseURL,
		RequestTimeout: cfg.API.RequestTimeout,
		ConnectTimeout: cfg.API.ConnectTimeout,
		SocketTimeout:  cfg.API.SocketTimeout,
	}, log)

	authSvc := api.NewAuthService(client)
	catalogSvc := api.NewCatalogService(client)
	cartSvc := api.NewCartService(client)
	paymentSvc := api.NewPaymentService(client)
	reviewSvc := api.NewReviewService(client)

	users := repository.NewUserRepository(authSvc)
	products := repository.NewProductRepository(catalogSvc)
	cart := repository.NewCartRepository(cartSvc)

	front := &front{
		in:       bufio.NewScanner(os.Stdin),
		users:    users,
		products: products,
		login:    ui.NewLoginScreen(users),
		register: ui.NewRegisterScreen(users),
		home:     ui.NewHomeScreen(products),
		detail:   ui.NewProductDetailScreen(products, cart, users),
		cart:     ui.NewCartScreen(cart, users),
		checkout: ui.NewCheckoutScreen(cart, users, paymentSvc),
		history:  ui.NewOrderHistoryScreen(paymentSvc, users),
		reviews:  ui.NewReviewsScreen(reviewSvc, users),
		profile:  ui.NewProfileScreen(users),
	}
	front.run()
}

// front bucle de terminal: lee comandos, dispara una tarea por interacción y
// pinta el estado publicado al terminar.
type front struct {
	in       *bufio.Scanner
	users    *repository.UserRepository
	products *repository.ProductRepository
	login    *ui.LoginScreen
	register *ui.RegisterScreen
	home     *ui.HomeScreen
	detail   *ui.ProductDetailScreen
	cart     *ui.CartScreen
	checkout *ui.CheckoutScreen
	history  *ui.OrderHistoryScreen
	reviews  *ui.ReviewsScreen
	profile  *ui.ProfileScreen
}

// dispatch lanza la acción en su propia goroutine y espera el resultado,
// como haría un contexto de vista con una tarea por interacción.
func dispatch(action func() error) {
	done := make(chan error, 1)
	go func() { done <- action() }()
	if err := <-done; err != nil {
		fmt.Println("✗", err)
	}
}

func (f *front) run() {
	ctx := context.Background()

	dispatch(func() error { return f.home.Load(ctx) })
	f.printProducts()

	for {
		f.prompt()
		if !f.in.Scan() {
			return
		}
		line := strings.TrimSpace(f.in.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "salir", "q":
			return
		case "catalogo":
			dispatch(func() error { return f.home.Load(ctx) })
			f.printProducts()
		case "buscar":
			dispatch(func() error { return f.home.Search(ctx, arg) })
			f.printProducts()
		case "ver":
			id := atoi(arg)
			dispatch(func() error { return f.detail.Load(ctx, id) })
			f.printSelected()
		case "resenas":
			id := atoi(arg)
			dispatch(func() error { return f.reviews.Load(ctx, id, 0) })
			f.printReviews()
		case "opinar":
			f.submitReview(ctx)
		case "agregar":
			id := atoi(arg)
			dispatch(func() error { return f.detail.AddToCart(ctx, id, 1) })
			f.printCart()
		case "carrito":
			dispatch(func() error { return f.cart.Load(ctx) })
			f.printCart()
		case "quitar":
			id := atoi(arg)
			dispatch(func() error { return f.cart.Remove(ctx, id) })
			f.printCart()
		case "vaciar":
			dispatch(func() error { return f.cart.Clear(ctx) })
			f.printCart()
		case "pagar":
			f.doCheckout(ctx)
		case "pedidos":
			dispatch(func() error { return f.history.Load(ctx) })
			f.printHistory()
		case "registro":
			f.doRegister(ctx)
		case "login":
			f.doLogin(ctx)
		case "perfil":
			f.printProfile(ctx)
		case "logout":
			f.profile.Logout()
			fmt.Println("Sesión cerrada")
		default:
			fmt.Println("Comando desconocido:", cmd)
		}
	}
}

func (f *front) prompt() {
	if u := f.users.CurrentUser().Get(); u != nil {
		fmt.Printf("\n[%s] > ", u.Nombre)
		return
	}
	fmt.Print("\n[invitado] > ")
}

func (f *front) ask(label string) string {
	fmt.Print(label, ": ")
	if !f.in.Scan() {
		return ""
	}
	return strings.TrimSpace(f.in.Text())
}

func (f *front) doLogin(ctx context.Context) {
	email := f.ask("Email")
	password := f.ask("Contraseña")
	dispatch(func() error { return f.login.Submit(ctx, email, password) })
	if u := f.users.CurrentUser().Get(); u != nil {
		fmt.Println("Bienvenido,", u.NombreCompleto())
	}
}

func (f *front) doRegister(ctx context.Context) {
	form := ui.RegisterForm{
		Nombre:   f.ask("Nombre"),
		Apellido: f.ask("Apellido"),
		Email:    f.ask("Email"),
		Password: f.ask("Contraseña"),
	}
	dispatch(func() error { return f.register.Submit(ctx, form) })
	if u := f.users.CurrentUser().Get(); u != nil {
		fmt.Println("Cuenta creada. Bienvenido,", u.NombreCompleto())
	}
}

func (f *front) doCheckout(ctx context.Context) {
	form := ui.CheckoutForm{
		DireccionEnvio:   f.ask("Dirección de envío"),
		TelefonoContacto: f.ask("Teléfono"),
		MetodoPago:       f.ask("Método de pago"),
		NumeroTarjeta:    f.ask("Número de tarjeta"),
		CVV:              f.ask("CVV"),
		FechaExpiracion:  f.ask("Expiración (MM/AA)"),
		NombreTitular:    f.ask("Titular"),
	}
	dispatch(func() error { return f.checkout.Confirm(ctx, form) })
	if r := f.checkout.Result(); r != nil {
		fmt.Printf("%s — pedido #%d por %s\n", r.Mensaje, r.Pedido.ID, r.Pedido.Total)
	}
}

func (f *front) submitReview(ctx context.Context) {
	rating := atoi(f.ask("Calificación (1-5)"))
	comment := f.ask("Comentario")
	dispatch(func() error { return f.reviews.Submit(ctx, rating, comment) })
	f.printReviews()
}

func (f *front) printProducts() {
	items := f.products.Products().Get()
	if len(items) == 0 {
		fmt.Println("(catálogo vacío)")
		return
	}
	for _, p := range items {
		fmt.Printf("  #%d  %-28s $%s  (stock %d)\n", p.ID, p.Nombre, p.Precio, p.Stock)
	}
}

func (f *front) printSelected() {
	p := f.products.Selected().Get()
	if p == nil {
		return
	}
	fmt.Printf("#%d %s — $%s\n%s\nTienda: %s | Calificación: %.1f (%d reseñas)\n",
		p.ID, p.Nombre, p.Precio, p.Descripcion, p.TiendaNombre, p.CalificacionPromedio, p.CantidadReseñas)
}

func (f *front) printCart() {
	cart := f.cart.Snapshot()
	if cart == nil || cart.IsEmpty() {
		fmt.Println("(carrito vacío)")
		return
	}
	for _, it := range cart.Items {
		fmt.Printf("  #%d  %-28s x%d  $%s\n", it.ProductoID, it.ProductoNombre, it.Cantidad, it.Subtotal)
	}
	fmt.Printf("  Total: $%s\n", cart.Total)
}

func (f *front) printHistory() {
	h := f.history.History()
	if h == nil || len(h.Pagos) == 0 {
		fmt.Println("No tienes pedidos realizados")
		return
	}
	for _, p := range h.Pagos {
		fmt.Printf("  Pedido #%d — $%s — %s (%s)\n", p.PedidoID, p.Monto, p.Estado, p.MetodoPago)
	}
	fmt.Printf("  Total pagado: $%s en %d pagos\n", h.TotalPagado, h.CantidadPagos)
}

func (f *front) printReviews() {
	page := f.reviews.Page()
	if page == nil || len(page.Reseñas) == 0 {
		fmt.Println("(sin reseñas)")
		return
	}
	for _, r := range page.Reseñas {
		author := ""
		if r.Usuario != nil {
			author = r.Usuario.Nombre
		}
		fmt.Printf("  [%d/5] %s — %s\n", r.Calificacion, r.Comentario, author)
	}
}

func (f *front) printProfile(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		u, err := f.profile.Load(ctx)
		if err != nil {
			fmt.Println("✗", err)
			return
		}
		fmt.Printf("%s <%s> roles=%v\n", u.NombreCompleto(), u.Email, u.Roles)
	}()
	<-done
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
