package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes son los que
// las pantallas muestran al usuario, por eso van en español.
var (
	ErrCamposIncompletos = errors.New("Por favor, complete todos los campos")
	ErrSesionRequerida   = errors.New("inicia sesión para continuar")
	ErrCarritoVacio      = errors.New("el carrito está vacío")
	ErrCalificacion      = errors.New("la calificación debe estar entre 1 y 5")
	ErrEmailInvalido     = errors.New("el email no es válido")
	ErrNotFound          = errors.New("recurso no encontrado")
)
