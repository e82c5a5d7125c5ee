package repository

import (
	"context"
	"sync"

	"github.com/bugabuga/appecommerce/internal/application/ports"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// UserRepository mantiene el usuario autenticado actual. nil significa
// sesión cerrada. Todos los errores del servicio se devuelven como error
// sin tocar el estado publicado.
type UserRepository struct {
	auth ports.AuthAPI

	// Serializa cada operación completa (llamada + publicación) para que
	// dos acciones rápidas no intercalen sus respuestas.
	mu      sync.Mutex
	current *Observable[*entity.User]
}

// NewUserRepository construye el repositorio.
func NewUserRepository(auth ports.AuthAPI) *UserRepository {
	return &UserRepository{
		auth:    auth,
		current: NewObservable[*entity.User](nil),
	}
}

// CurrentUser celda observable con el usuario autenticado (nil sin sesión).
func (r *UserRepository) CurrentUser() *Observable[*entity.User] {
	return r.current
}

// Register registra un usuario nuevo. No inicia sesión ni publica estado.
func (r *UserRepository) Register(ctx context.Context, user entity.User) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.auth.Register(ctx, user)
}

// Login autentica y publica el usuario como sesión actual.
func (r *UserRepository) Login(ctx context.Context, email, password string) (entity.LoginResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp, err := r.auth.Login(ctx, email, password)
	if err != nil {
		return entity.LoginResponse{}, err
	}
	u := resp.Usuario
	r.current.Set(&u)
	return resp, nil
}

// GetProfile consulta el perfil de un usuario sin alterar la sesión actual.
func (r *UserRepository) GetProfile(ctx context.Context, userID int) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.auth.GetProfile(ctx, userID)
}

// UpdateProfile actualiza el perfil; si es el del usuario en sesión,
// republica el valor devuelto por el backend.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int, user entity.User) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated, err := r.auth.UpdateProfile(ctx, userID, user)
	if err != nil {
		return entity.User{}, err
	}
	if cur := r.current.Get(); cur != nil && cur.ID == userID {
		r.current.Set(&updated)
	}
	return updated, nil
}

// Logout cierra la sesión localmente. Operación síncrona, sin red.
func (r *UserRepository) Logout() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current.Set(nil)
}
