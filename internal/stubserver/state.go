package stubserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// userRecord usuario registrado con su hash bcrypt.
type userRecord struct {
	user entity.User
	hash []byte
}

// state estado en memoria del stub. Un solo mutex protege todo; el stub es
// una herramienta de desarrollo, no un servidor de producción.
type state struct {
	mu sync.Mutex

	nextID   int
	users    map[int]*userRecord
	byEmail  map[string]int
	products []entity.Product
	stores   []entity.Store
	carts    map[int]*entity.Cart
	orders   map[int]*entity.Order
	payments map[int]*entity.Payment
	reviews  map[int]*entity.Review
}

func newState() *state {
	s := &state{
		nextID:   1000,
		users:    make(map[int]*userRecord),
		byEmail:  make(map[string]int),
		carts:    make(map[int]*entity.Cart),
		orders:   make(map[int]*entity.Order),
		payments: make(map[int]*entity.Payment),
		reviews:  make(map[int]*entity.Review),
	}
	s.seed()
	return s
}

// id asigna un identificador nuevo. Llamar con el mutex tomado.
func (s *state) id() int {
	s.nextID++
	return s.nextID
}

// seed catálogo de ejemplo: dos tiendas y un puñado de productos.
func (s *state) seed() {
	s.stores = []entity.Store{
		{ID: 1, Nombre: "TecnoHogar", Descripcion: "Electrónica y hogar", LogoURL: "https://picsum.photos/seed/t1/200", Activa: true},
		{ID: 2, Nombre: "Moda Urbana", Descripcion: "Ropa y accesorios", LogoURL: "https://picsum.photos/seed/t2/200", Activa: true},
	}
	precio := func(v string) decimal.Decimal { d, _ := decimal.NewFromString(v); return d }
	s.products = []entity.Product{
		{ID: 1, Nombre: "Smartphone XYZ", Descripcion: "Smartphone con cámara triple", Precio: precio("599.99"), Stock: 10, ImagenURL: "https://picsum.photos/seed/p1/300", TiendaID: 1, TiendaNombre: "TecnoHogar", CategoriaID: 1, CategoriaNombre: "Electrónica"},
		{ID: 2, Nombre: "Laptop Pro", Descripcion: "Laptop potente para profesionales", Precio: precio("1299.99"), Stock: 5, ImagenURL: "https://picsum.photos/seed/p2/300", TiendaID: 1, TiendaNombre: "TecnoHogar", CategoriaID: 1, CategoriaNombre: "Electrónica"},
		{ID: 3, Nombre: "Auriculares Inalámbricos", Descripcion: "Cancelación activa de ruido", Precio: precio("149.99"), Stock: 20, ImagenURL: "https://picsum.photos/seed/p3/300", TiendaID: 1, TiendaNombre: "TecnoHogar", CategoriaID: 2, CategoriaNombre: "Audio"},
		{ID: 4, Nombre: "Camiseta Estampada", Descripcion: "Algodón orgánico", Precio: precio("24.50"), Stock: 50, ImagenURL: "https://picsum.photos/seed/p4/300", TiendaID: 2, TiendaNombre: "Moda Urbana", CategoriaID: 3, CategoriaNombre: "Ropa"},
		{ID: 5, Nombre: "Zapatillas Runner", Descripcion: "Para correr en ciudad", Precio: precio("89.90"), Stock: 15, ImagenURL: "https://picsum.photos/seed/p5/300", TiendaID: 2, TiendaNombre: "Moda Urbana", CategoriaID: 3, CategoriaNombre: "Ropa"},
		{ID: 6, Nombre: "Reloj Deportivo", Descripcion: "GPS y pulsómetro", Precio: precio("199.00"), Stock: 8, ImagenURL: "https://picsum.photos/seed/p6/300", TiendaID: 2, TiendaNombre: "Moda Urbana", CategoriaID: 2, CategoriaNombre: "Accesorios"},
	}
}

func (s *state) findProduct(id int) *entity.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

// cartFor devuelve el carrito del usuario, creándolo vacío si no existe.
func (s *state) cartFor(userID int) *entity.Cart {
	if c, ok := s.carts[userID]; ok {
		return c
	}
	c := &entity.Cart{ID: s.id(), UsuarioID: userID, Items: []entity.CartItem{}, Total: decimal.Zero}
	s.carts[userID] = c
	return c
}

// recalc recalcula subtotales y total; el servidor es la fuente de verdad.
func recalc(c *entity.Cart) {
	total := decimal.Zero
	for i := range c.Items {
		it := &c.Items[i]
		it.Subtotal = it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		total = total.Add(it.Subtotal)
	}
	c.Total = total
}

// refreshProductRating actualiza el agregado de reseñas del producto.
func (s *state) refreshProductRating(productID int) {
	p := s.findProduct(productID)
	if p == nil {
		return
	}
	var sum, count int
	for _, r := range s.reviews {
		if r.Producto != nil && r.Producto.ID == productID {
			sum += r.Calificacion
			count++
		}
	}
	p.CantidadReseñas = count
	if count == 0 {
		p.CalificacionPromedio = 0
		return
	}
	p.CalificacionPromedio = float64(sum) / float64(count)
}

// productReviews reseñas de un producto, más recientes primero.
func (s *state) productReviews(productID int) []entity.Review {
	var out []entity.Review
	for _, r := range s.reviews {
		if r.Producto != nil && r.Producto.ID == productID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaCreacion > out[j].FechaCreacion })
	return out
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func matches(p entity.Product, keyword string) bool {
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(p.Nombre), k) ||
		strings.Contains(strings.ToLower(p.Descripcion), k)
}

// paginate corta una página y devuelve los metadatos del contrato
// {items, currentPage, totalItems, totalPages}.
func paginate[T any](items []T, page, size int) (pageItems []T, currentPage, totalItems, totalPages int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	totalItems = len(items)
	totalPages = (totalItems + size - 1) / size
	start := page * size
	if start >= totalItems {
		return []T{}, page, totalItems, totalPages
	}
	end := start + size
	if end > totalItems {
		end = totalItems
	}
	return items[start:end], page, totalItems, totalPages
}
