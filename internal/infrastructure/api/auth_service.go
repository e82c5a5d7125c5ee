package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// Verificar en tiempo de compilación que AuthService implementa el puerto.
var _ ports.AuthAPI = (*AuthService)(nil)

// AuthService acceso al recurso /auth-simple.
type AuthService struct {
	client *Client
}

// NewAuthService construye el servicio.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Register registra un usuario nuevo.
func (s *AuthService) Register(ctx context.Context, user entity.User) (entity.User, error) {
	var out entity.User
	err := s.client.Post(ctx, "/auth-simple/registro", nil, user, &out)
	return out, err
}

// Login autentica con email y contraseña.
func (s *AuthService) Login(ctx context.Context, email, password string) (entity.LoginResponse, error) {
	var out entity.LoginResponse
	err := s.client.Post(ctx, "/auth-simple/login", nil, entity.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	return out, err
}

// GetProfile obtiene el perfil del usuario.
func (s *AuthService) GetProfile(ctx context.Context, userID int) (entity.User, error) {
	var out entity.User
	q := url.Values{"usuarioId": {strconv.Itoa(userID)}}
	err := s.client.Get(ctx, "/auth-simple/perfil", q, &out)
	return out, err
}

// UpdateProfile actualiza el perfil del usuario.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int, user entity.User) (entity.User, error) {
	var out entity.User
	err := s.client.Put(ctx, "/auth-simple/perfil/"+strconv.Itoa(userID), nil, user, &out)
	return out, err
}
