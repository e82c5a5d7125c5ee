package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// fakeAuth puerto de auth que cuenta llamadas de red.
type fakeAuth struct {
	calls int
	user  entity.User
}

func (f *fakeAuth) Register(_ context.Context, u entity.User) (entity.User, error) {
	f.calls++
	u.ID = 1
	return u, nil
}

func (f *fakeAuth) Login(context.Context, string, string) (entity.LoginResponse, error) {
	f.calls++
	return entity.LoginResponse{Usuario: f.user}, nil
}

func (f *fakeAuth) GetProfile(context.Context, int) (entity.User, error) {
	f.calls++
	return f.user, nil
}

func (f *fakeAuth) UpdateProfile(_ context.Context, _ int, u entity.User) (entity.User, error) {
	f.calls++
	return u, nil
}

// Con contraseña vacía no se emite ninguna llamada de red: corta en local.
func TestLoginScreen_CamposVaciosNoLlamanRed(t *testing.T) {
	fake := &fakeAuth{}
	users := repository.NewUserRepository(fake)
	screen := NewLoginScreen(users)

	err := screen.Submit(context.Background(), "ana@mail.com", "")
	require.Error(t, err)

	assert.Equal(t, 0, fake.calls, "la validación local corta antes de la red")
	assert.Equal(t, "Por favor, complete todos los campos", screen.Err())
	assert.False(t, screen.Busy())
	assert.Nil(t, users.CurrentUser().Get())
}

func TestLoginScreen_ExitoPublicaSesion(t *testing.T) {
	fake := &fakeAuth{user: entity.User{ID: 7, Nombre: "Ana"}}
	users := repository.NewUserRepository(fake)
	screen := NewLoginScreen(users)

	err := screen.Submit(context.Background(), "ana@mail.com", "secreta")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	assert.Empty(t, screen.Err())
	require.NotNil(t, users.CurrentUser().Get())
	assert.Equal(t, "Ana", users.CurrentUser().Get().Nombre)
}
