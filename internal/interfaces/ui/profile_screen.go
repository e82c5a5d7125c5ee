package ui

import (
	"context"

	"github.com/bugabuga/appecommerce/internal/application/repository"
	"github.com/bugabuga/appecommerce/internal/domain"
	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

// ProfileScreen perfil del usuario en sesión: consulta y edición.
type ProfileScreen struct {
	screenState
	users *repository.UserRepository
}

// NewProfileScreen construye la pantalla.
func NewProfileScreen(users *repository.UserRepository) *ProfileScreen {
	return &ProfileScreen{users: users}
}

// Load refresca el perfil desde el backend y devuelve la copia obtenida.
func (s *ProfileScreen) Load(ctx context.Context) (entity.User, error) {
	if !s.begin() {
		return entity.User{}, nil
	}

	var profile entity.User
	err := func() error {
		user := s.users.CurrentUser().Get()
		if user == nil {
			return domain.ErrSesionRequerida
		}
		var err error
		profile, err = s.users.GetProfile(ctx, user.ID)
		return err
	}()

	s.finish(err)
	return profile, err
}

// ProfileForm campos editables del perfil. Password vacío conserva la actual.
type ProfileForm struct {
	Nombre   string `validate:"required"`
	Apellido string `validate:"required"`
	Email    string `validate:"required"`
	Password string
}

// Save guarda los cambios del perfil del usuario en sesión.
func (s *ProfileScreen) Save(ctx context.Context, form ProfileForm) error {
	if !s.begin() {
		return nil
	}

	err := func() error {
		user := s.users.CurrentUser().Get()
		if user == nil {
			return domain.ErrSesionRequerida
		}
		if err := requiredFields(form); err != nil {
			return err
		}
		if err := validate.Var(form.Email, "email"); err != nil {
			return domain.ErrEmailInvalido
		}
		_, err := s.users.UpdateProfile(ctx, user.ID, entity.User{
			ID:       user.ID,
			Nombre:   form.Nombre,
			Apellido: form.Apellido,
			Email:    form.Email,
			Password: form.Password,
			Roles:    user.Roles,
		})
		return err
	}()

	s.finish(err)
	return err
}

// Logout cierra la sesión. Operación local y síncrona.
func (s *ProfileScreen) Logout() {
	s.users.Logout()
}
