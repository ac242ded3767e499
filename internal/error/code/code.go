package code

import (
	"errors"
	"net/http"
)

// Kind clasifica los errores de negocio. Reemplaza los mensajes de texto
// libre del sistema original por una enumeración tipada.
type Kind int

const (
	// KindInternal - 500: error inesperado.
	KindInternal Kind = iota
	// KindNotFound - 404: el recurso buscado no existe.
	KindNotFound
	// KindValidation - 400: un campo no cumple las reglas de negocio.
	KindValidation
	// KindConflict - 400: colisión de unicidad detectada por la base de datos.
	KindConflict
	// KindUnauthorized - 401: operación no permitida.
	KindUnauthorized
)

// Error es el error de negocio que viaja desde los servicios hasta los
// controladores. Campo solo se completa para errores de validación.
type Error struct {
	Kind    Kind   `json:"-"`
	Campo   string `json:"campo,omitempty"`
	Mensaje string `json:"mensaje"`
}

func (e *Error) Error() string {
	return e.Mensaje
}

// NotFound crea un error de recurso no encontrado
func NotFound(mensaje string) *Error {
	return &Error{Kind: KindNotFound, Mensaje: mensaje}
}

// Validation crea un error de validación asociado a un campo
func Validation(campo, mensaje string) *Error {
	return &Error{Kind: KindValidation, Campo: campo, Mensaje: mensaje}
}

// Conflict crea un error de colisión de unicidad
func Conflict(mensaje string) *Error {
	return &Error{Kind: KindConflict, Mensaje: mensaje}
}

// Unauthorized crea un error de operación no permitida
func Unauthorized(mensaje string) *Error {
	return &Error{Kind: KindUnauthorized, Mensaje: mensaje}
}

// Internal crea un error interno genérico
func Internal(mensaje string) *Error {
	return &Error{Kind: KindInternal, Mensaje: mensaje}
}

// KindOf extrae el Kind de un error; los errores desconocidos son internos
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus traduce un Kind al código HTTP correspondiente
func HTTPStatus(k Kind) int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
