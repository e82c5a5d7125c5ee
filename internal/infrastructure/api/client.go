// Package api implementa el acceso HTTP al backend de la plataforma:
// un cliente de transporte único y un servicio por grupo de recursos
// (auth, catálogo, carrito, pagos, reseñas). Los servicios no guardan
// estado; cada método es exactamente una petición HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bugabuga/appecommerce/pkg/logger"
)

// Config parámetros del cliente de transporte. Los timeouts por defecto
// replican los del cliente original: 30s de petición, 15s de conexión,
// 15s de lectura.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
}

func (c *Config) defaults() {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 15 * time.Second
	}
	if c.SocketTimeout <= 0 {
		c.SocketTimeout = 15 * time.Second
	}
}

// Client punto de entrada HTTP compartido por todos los servicios.
// No hace reintentos: cualquier fallo de red o timeout sube al llamador.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// New construye el cliente de transporte. Se crea una sola vez por proceso.
func New(cfg Config, log *logger.Logger) *Client {
	cfg.defaults()

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.SocketTimeout,
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		log: log,
	}
}

// BaseURL devuelve la URL base configurada.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get emite GET path?query y decodifica la respuesta en out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post emite POST path?query con body JSON y decodifica la respuesta en out.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

// Put emite PUT path?query con body JSON y decodifica la respuesta en out.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

// Delete emite DELETE path?query y decodifica la respuesta en out (nil la descarta).
func (c *Client) Delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

// do ejecuta una única petición. 2xx decodifica en out (campos desconocidos
// se ignoran); cualquier otro status devuelve *StatusError con el cuerpo.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar cuerpo de %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("api: crear petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().
			Str("request_id", reqID).
			Str("method", method).
			Str("url", fullURL).
			Dur("elapsed", time.Since(start)).
			Err(err).
			Msg("fallo de transporte")
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	// Nivel cabeceras: método, URL, status y duración; nunca cuerpos.
	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("url", fullURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("petición HTTP")

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("api: leer respuesta de %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(raw)),
			Method: method,
			Path:   path,
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decodificar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

// maxBodySize límite de lectura de cuerpos de respuesta.
const maxBodySize = 4 << 20

// StatusError respuesta no 2xx del backend, con el cuerpo adjunto como texto.
type StatusError struct {
	Status int
	Body   string
	Method string
	Path   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api: %s %s: HTTP %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("api: %s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// IsStatus indica si err es un *StatusError con el status dado.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
