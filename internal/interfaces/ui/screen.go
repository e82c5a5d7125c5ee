// Package ui contiene las pantallas de la aplicación como view-models:
// cada pantalla guarda estado transitorio propio (bandera de carga y mensaje
// de error), dispara operaciones de los repositorios ante acciones del
// usuario y se renderiza desde el último estado publicado. Las acciones son
// seguras para ejecutarse en una goroutine por interacción; la pantalla nunca
// muta campos propiedad de un repositorio.
package ui

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/bugabuga/appecommerce/internal/domain"
)

// validate instancia compartida del validador de formularios.
var validate = validator.New()

// screenState estado transitorio común a todas las pantallas.
type screenState struct {
	mu     sync.Mutex
	busy   bool
	errMsg string
}

// begin marca la pantalla como ocupada y limpia el error anterior.
// Devuelve false si ya hay una acción en curso (doble clic).
func (s *screenState) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	s.errMsg = ""
	return true
}

// finish termina la acción registrando el error si lo hubo.
func (s *screenState) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		s.errMsg = err.Error()
	}
}

// Busy indica si hay una acción en curso.
func (s *screenState) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Err devuelve el mensaje de error de la última acción ("" si no hubo).
func (s *screenState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// requiredFields valida un formulario y traduce cualquier campo faltante al
// mensaje único que muestran las pantallas.
func requiredFields(form any) error {
	if err := validate.Struct(form); err != nil {
		return domain.ErrCamposIncompletos
	}
	return nil
}
