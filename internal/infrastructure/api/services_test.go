package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
	"github.com/bugabuga/appecommerce/pkg/logger"
)

// capture registra la última petición recibida y responde con el JSON dado.
type capture struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

func captureServer(t *testing.T, responseJSON string) (*Client, *capture) {
	t.Helper()
	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.method = r.Method
		cap.path = r.URL.Path
		cap.query = r.URL.Query()
		cap.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responseJSON))
	}))
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/api"}, logger.Nop()), cap
}

func TestAuthService_LoginMapeaEndpoint(t *testing.T) {
	client, cap := captureServer(t, `{"usuario":{"id":7,"nombre":"Ana"},"mensaje":"ok"}`)
	svc := NewAuthService(client)

	resp, err := svc.Login(context.Background(), "ana@mail.com", "secreta")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, cap.method)
	assert.Equal(t, "/api/auth-simple/login", cap.path)
	assert.Equal(t, 7, resp.Usuario.ID)
	assert.Contains(t, string(cap.body), `"ana@mail.com"`)
}

func TestAuthService_PerfilUsaQueryParam(t *testing.T) {
	client, cap := captureServer(t, `{"id":7,"nombre":"Ana"}`)
	svc := NewAuthService(client)

	_, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, cap.method)
	assert.Equal(t, "/api/auth-simple/perfil", cap.path)
	assert.Equal(t, "7", cap.query.Get("usuarioId"))
}

func TestCatalogService_ListadoConDefaults(t *testing.T) {
	client, cap := captureServer(t, `{"productos":[],"currentPage":0,"totalItems":0,"totalPages":0}`)
	svc := NewCatalogService(client)

	_, err := svc.ListProducts(context.Background(), 0, 0, "")
	require.NoError(t, err)

	assert.Equal(t, "/api/catalogo/productos", cap.path)
	assert.Equal(t, "0", cap.query.Get("page"))
	assert.Equal(t, "10", cap.query.Get("size"), "size por defecto 10")
	assert.Equal(t, "id", cap.query.Get("sort"), "sort por defecto id")
}

func TestCatalogService_BusquedaPorKeyword(t *testing.T) {
	client, cap := captureServer(t, `{"productos":[],"currentPage":2,"totalItems":0,"totalPages":0}`)
	svc := NewCatalogService(client)

	page, err := svc.SearchProducts(context.Background(), "laptop", 2, 5)
	require.NoError(t, err)

	assert.Equal(t, "/api/catalogo/productos/buscar", cap.path)
	assert.Equal(t, "laptop", cap.query.Get("keyword"))
	assert.Equal(t, "2", cap.query.Get("page"))
	assert.Equal(t, "5", cap.query.Get("size"))
	assert.Equal(t, 2, page.CurrentPage)
}

func TestCatalogService_RutasPorTiendaYCategoria(t *testing.T) {
	client, cap := captureServer(t, `{"productos":[],"currentPage":0,"totalItems":0,"totalPages":0}`)
	svc := NewCatalogService(client)

	_, err := svc.ProductsByStore(context.Background(), 2, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "/api/catalogo/tiendas/2/productos", cap.path)

	_, err = svc.ProductsByCategory(context.Background(), 3, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "/api/catalogo/categorias/3/productos", cap.path)
}

func TestCartService_MutacionesUsanQueryParams(t *testing.T) {
	client, cap := captureServer(t, `{"id":1,"usuarioId":1,"items":[],"total":0}`)
	svc := NewCartService(client)

	_, err := svc.AddProduct(context.Background(), 1, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, cap.method)
	assert.Equal(t, "/api/carrito/agregar", cap.path)
	assert.Equal(t, "1", cap.query.Get("usuarioId"))
	assert.Equal(t, "5", cap.query.Get("productoId"))
	assert.Equal(t, "2", cap.query.Get("cantidad"))

	_, err = svc.UpdateQuantity(context.Background(), 1, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, cap.method)
	assert.Equal(t, "/api/carrito/actualizar", cap.path)

	_, err = svc.RemoveProduct(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, cap.method)
	assert.Equal(t, "/api/carrito/eliminar", cap.path)

	_, err = svc.Clear(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "/api/carrito/vaciar/1", cap.path)
}

func TestPaymentService_ProcesarEnviaTarjetaYParams(t *testing.T) {
	client, cap := captureServer(t, `{"pedido":{"id":9,"usuarioId":1,"items":[],"total":100,"estado":"PAGADO","direccionEnvio":"","telefonoContacto":""},"mensaje":"ok","estado":"APROBADO"}`)
	svc := NewPaymentService(client)

	result, err := svc.Process(context.Background(), 1, 9, "TARJETA", entity.CardDetails{
		NumeroTarjeta:   "4111111111111111",
		CVV:             "123",
		FechaExpiracion: "12/27",
		NombreTitular:   "ANA GOMEZ",
	}, entity.ShippingDetails{
		DireccionEnvio:   "Calle 1 # 2-3",
		TelefonoContacto: "3001234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/pagos/procesar", cap.path)
	assert.Equal(t, "1", cap.query.Get("usuarioId"))
	assert.Equal(t, "9", cap.query.Get("pedidoId"))
	assert.Equal(t, "TARJETA", cap.query.Get("metodoPago"))
	assert.Equal(t, "Calle 1 # 2-3", cap.query.Get("direccionEnvio"))
	assert.Equal(t, "3001234567", cap.query.Get("telefonoContacto"))
	assert.Contains(t, string(cap.body), "4111111111111111")
	assert.Equal(t, "APROBADO", result.Estado)
}

func TestReviewService_ListadoConOrdenPorDefecto(t *testing.T) {
	client, cap := captureServer(t, `{"reseñas":[],"currentPage":0,"totalItems":0,"totalPages":0}`)
	svc := NewReviewService(client)

	_, err := svc.ProductReviews(context.Background(), 5, 0, 0, "", "")
	require.NoError(t, err)

	assert.Equal(t, "/api/reseñas/producto/5", cap.path)
	assert.Equal(t, "fechaCreacion", cap.query.Get("sort"))
	assert.Equal(t, "desc", cap.query.Get("direction"))
	assert.Equal(t, "10", cap.query.Get("size"))
}

func TestReviewService_UpdateEnviaCuerpoTipado(t *testing.T) {
	client, cap := captureServer(t, `{"id":12,"calificacion":4,"comentario":"Mejor de lo esperado"}`)
	svc := NewReviewService(client)

	updated, err := svc.Update(context.Background(), 12, 4, "Mejor de lo esperado")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, cap.method)
	assert.Equal(t, "/api/reseñas/12", cap.path)
	assert.JSONEq(t, `{"calificacion":4,"comentario":"Mejor de lo esperado"}`, string(cap.body))
	assert.Equal(t, 4, updated.Calificacion)
}

func TestReviewService_DeleteSinCuerpo(t *testing.T) {
	client, cap := captureServer(t, ``)
	svc := NewReviewService(client)

	err := svc.Delete(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, cap.method)
	assert.Equal(t, "/api/reseñas/12", cap.path)
}
