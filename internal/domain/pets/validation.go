package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError describe por qué un payload fue rechazado.
// errors.Is(err, ErrInvalidInput) es true para todos.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PetRequest es el body de POST /pets y PUT /pets/{id}.
// Punteros para distinguir "no enviado"/null de un valor.
// "category" se acepta como alias de "kind". Cualquier "id" del cliente se ignora.
type PetRequest struct {
	Name     *string `json:"name"`
	Kind     *string `json:"kind"`
	Category *string `json:"category"`
}

// DecodePetRequest lee un JSON object del body. Un body vacío, un JSON roto
// o algo que no sea objeto (array, string, null) es un ValidationError.
func DecodePetRequest(r io.Reader) (PetRequest, error) {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return PetRequest{}, &ValidationError{Reason: "request body must be a valid JSON object"}
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return PetRequest{}, &ValidationError{Reason: "request body must contain a single JSON object"}
	}
	if t := strings.TrimSpace(string(raw)); !strings.HasPrefix(t, "{") {
		return PetRequest{}, &ValidationError{Reason: "request body must be a JSON object"}
	}

	var req PetRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return PetRequest{}, &ValidationError{Reason: "request body has invalid field types"}
	}
	return req, nil
}

// Validate exige name y kind (o category) presentes y no vacíos.
func (r PetRequest) Validate() error {
	if blank(r.Name) {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if blank(r.Kind) && blank(r.Category) {
		return &ValidationError{Field: "kind", Reason: "is required"}
	}
	return nil
}

// Values devuelve name/kind normalizados. Llamar después de Validate.
func (r PetRequest) Values() (name, kind string) {
	name = strings.TrimSpace(deref(r.Name))
	kind = strings.TrimSpace(deref(r.Kind))
	if kind == "" {
		kind = strings.TrimSpace(deref(r.Category))
	}
	return name, kind
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
