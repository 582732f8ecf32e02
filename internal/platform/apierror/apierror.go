// Package apierror define el envelope de error JSON de la API:
//
//	{"status": 404, "error": "Not Found", "message": "..."}
//
// Todos los handlers (rutas, 404/405 del router, recover) escriben errores por acá.
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
)

const (
	TitleBadRequest       = "Bad Request"
	TitleNotFound         = "Not Found"
	TitleMethodNotAllowed = "Method not Allowed"
	TitleInternal         = "Internal Server Error"

	MethodNotAllowedMessage = "Your request method is not supported. Check your HTTP method and try again."
	RouteNotFoundMessage    = "The requested URL was not found on the server."
)

// Error es un error HTTP tipado. Status decide el código de respuesta.
type Error struct {
	Status  int
	Title   string
	Message string

	err error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.err != nil {
		return e.err.Error()
	}
	return e.Title
}

func (e *Error) Unwrap() error {
	return e.err
}

// BadRequest: payload inválido (validación) o JSON mal formado.
func BadRequest(msg string, cause error) *Error {
	return &Error{Status: http.StatusBadRequest, Title: TitleBadRequest, Message: msg, err: cause}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Title: TitleNotFound, Message: msg}
}

func MethodNotAllowed() *Error {
	return &Error{Status: http.StatusMethodNotAllowed, Title: TitleMethodNotAllowed, Message: MethodNotAllowedMessage}
}

// Internal envuelve una falla no manejada. El mensaje de la causa viaja en el envelope.
func Internal(cause error) *Error {
	msg := TitleInternal
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Status: http.StatusInternalServerError, Title: TitleInternal, Message: msg, err: cause}
}

// From convierte cualquier error en *Error. Lo que no sea *Error es un 500.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}

// Envelope es el cuerpo JSON de todo error.
type Envelope struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Write escribe err como envelope JSON con su status.
func Write(w http.ResponseWriter, err error) {
	e := From(err)
	WriteJSON(w, e.Status, Envelope{
		Status:  e.Status,
		Error:   e.Title,
		Message: e.Error(),
	})
}

// NotFoundHandler responde 404 a rutas desconocidas.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	Write(w, NotFound(RouteNotFoundMessage))
}

// MethodNotAllowedHandler responde 405 cuando la ruta existe pero el método no.
func MethodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	Write(w, MethodNotAllowed())
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
