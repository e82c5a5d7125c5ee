package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// fakeAuthAPI puerto de auth con respuestas programadas y contador de llamadas.
type fakeAuthAPI struct {
	user  entity.User
	err   error
	calls int
}

func (f *fakeAuthAPI) Register(_ context.Context, u entity.User) (entity.User, error) {
	f.calls++
	if f.err != nil {
		return entity.User{}, f.err
	}
	u.ID = 1
	return u, nil
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (entity.LoginResponse, error) {
	f.calls++
	if f.err != nil {
		return entity.LoginResponse{}, f.err
	}
	return entity.LoginResponse{Usuario: f.user, Mensaje: "Inicio de sesión exitoso"}, nil
}

func (f *fakeAuthAPI) GetProfile(context.Context, int) (entity.User, error) {
	f.calls++
	return f.user, f.err
}

func (f *fakeAuthAPI) UpdateProfile(_ context.Context, _ int, u entity.User) (entity.User, error) {
	f.calls++
	if f.err != nil {
		return entity.User{}, f.err
	}
	return u, nil
}

func TestUserRepository_LoginPublicaUsuario(t *testing.T) {
	ana := entity.User{ID: 7, Email: "ana@mail.com", Nombre: "Ana", Roles: []string{entity.RolCliente}}
	fake := &fakeAuthAPI{user: ana}
	repo := NewUserRepository(fake)

	require.Nil(t, repo.CurrentUser().Get(), "sin sesión el usuario es nil")

	resp, err := repo.Login(context.Background(), "ana@mail.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, ana, resp.Usuario)

	current := repo.CurrentUser().Get()
	require.NotNil(t, current)
	assert.Equal(t, ana, *current)
}

func TestUserRepository_LoginFallidoNoPublica(t *testing.T) {
	fake := &fakeAuthAPI{err: errors.New("HTTP 401")}
	repo := NewUserRepository(fake)

	_, err := repo.Login(context.Background(), "ana@mail.com", "mala")
	require.Error(t, err)
	assert.Nil(t, repo.CurrentUser().Get())
	assert.EqualValues(t, 0, repo.CurrentUser().Version())
}

// Logout es síncrono, local y siempre deja la sesión vacía.
func TestUserRepository_LogoutEsLocal(t *testing.T) {
	fake := &fakeAuthAPI{user: entity.User{ID: 7, Nombre: "Ana"}}
	repo := NewUserRepository(fake)

	_, err := repo.Login(context.Background(), "ana@mail.com", "secreta")
	require.NoError(t, err)
	callsTrasLogin := fake.calls

	repo.Logout()

	assert.Nil(t, repo.CurrentUser().Get())
	assert.Equal(t, callsTrasLogin, fake.calls, "logout no emite llamadas de red")
}

// Register no inicia sesión ni publica estado.
func TestUserRepository_RegisterNoPublica(t *testing.T) {
	fake := &fakeAuthAPI{}
	repo := NewUserRepository(fake)

	created, err := repo.Register(context.Background(), entity.User{Nombre: "Ana", Email: "ana@mail.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Nil(t, repo.CurrentUser().Get())
}

// UpdateProfile solo republica si el perfil editado es el de la sesión.
func TestUserRepository_UpdateProfileRepublicaSesion(t *testing.T) {
	ana := entity.User{ID: 7, Nombre: "Ana"}
	fake := &fakeAuthAPI{user: ana}
	repo := NewUserRepository(fake)

	_, err := repo.Login(context.Background(), "ana@mail.com", "secreta")
	require.NoError(t, err)

	// Editar el perfil de otro usuario no toca la sesión.
	otro := entity.User{ID: 99, Nombre: "Otro"}
	_, err = repo.UpdateProfile(context.Background(), 99, otro)
	require.NoError(t, err)
	assert.Equal(t, "Ana", repo.CurrentUser().Get().Nombre)

	// Editar el propio sí la republica.
	editada := entity.User{ID: 7, Nombre: "Ana María"}
	_, err = repo.UpdateProfile(context.Background(), 7, editada)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", repo.CurrentUser().Get().Nombre)
}
