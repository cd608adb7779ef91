package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
)

// ValidationError error de validación causado por el cliente (HTTP 4xx).
// Message es el texto que se devuelve tal cual en la respuesta.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation construye un ValidationError con el mensaje dado.
func Validation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reporta si err es un ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransportError fallo al entregar un mensaje a un colaborador externo (ej. SMTP).
// Se reporta al cliente como error terminal de la petición, sin reintentos.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "fallo de transporte: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reporta si err es un TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
