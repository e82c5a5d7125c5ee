package ui

import (
	"context"

	"github.com/bugabuga/appecommerce/internal/application/repository"
)

// LoginScreen pantalla de inicio de sesión.
type LoginScreen struct {
	screenState
	users *repository.UserRepository
}

// NewLoginScreen construye la pantalla.
func NewLoginScreen(users *repository.UserRepository) *LoginScreen {
	return &LoginScreen{users: users}
}

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Submit intenta iniciar sesión. Con campos vacíos no emite ninguna llamada
// de red: corta en local con el mensaje de validación.
func (s *LoginScreen) Submit(ctx context.Context, email, password string) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		if err := requiredFields(loginForm{Email: email, Password: password}); err != nil {
			return err
		}
		_, err := s.users.Login(ctx, email, password)
		return err
	}()

	s.finish(err)
	return err
}
