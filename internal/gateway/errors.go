package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a failed upstream call. Status is zero when the upstream
// could not be reached at all.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream unreachable: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}

// Unwrap returns the transport error, if any.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// UserMessage renders the user-facing message for the failure.
func (e *StatusError) UserMessage() string {
	switch e.Status {
	case 0:
		return "No se puede conectar al servidor. Verifica que el backend esté corriendo"
	case http.StatusUnauthorized:
		return "Tu sesión expiró. Por favor vuelve a iniciar sesión"
	case http.StatusForbidden:
		return "No tienes permisos para realizar esta operación"
	case http.StatusNotFound:
		return withDetail("Recurso no encontrado", e.Message)
	case http.StatusInternalServerError:
		return withDetail("Error interno del servidor", e.Message)
	default:
		msg := e.Message
		if msg == "" {
			msg = "Error al procesar la solicitud"
		}
		return fmt.Sprintf("Error %d: %s", e.Status, msg)
	}
}

func withDetail(base, detail string) string {
	if detail == "" {
		return base
	}
	return base + " - " + detail
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusUnauthorized
}
