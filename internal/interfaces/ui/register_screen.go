package ui

import (
	"context"

	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// RegisterScreen pantalla de registro de usuario.
type RegisterScreen struct {
	screenState
	users *repository.UserRepository
}

// NewRegisterScreen construye la pantalla.
func NewRegisterScreen(users *repository.UserRepository) *RegisterScreen {
	return &RegisterScreen{users: users}
}

// RegisterForm campos del formulario de registro.
type RegisterForm struct {
	Nombre   string `validate:"required"`
	Apellido string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Submit registra al usuario y, si el backend lo acepta, inicia sesión con
// las mismas credenciales.
func (s *RegisterScreen) Submit(ctx context.Context, form RegisterForm) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		if err := requiredFields(form); err != nil {
			return err
		}
		if err := validate.Var(form.Email, "email"); err != nil {
			return domain.ErrEmailInvalido
		}
		_, err := s.users.Register(ctx, entity.User{
			Nombre:   form.Nombre,
			Apellido: form.Apellido,
			Email:    form.Email,
			Password: form.Password,
			Roles:    []string{entity.RolCliente},
		})
		if err != nil {
			return err
		}
		_, err = s.users.Login(ctx, form.Email, form.Password)
		return err
	}()

	s.finish(err)
	return err
}
