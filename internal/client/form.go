package client

import (
	"errors"
	"strings"
)

// ErrMissingFields falta algún campo obligatorio del formulario.
var ErrMissingFields = errors.New("complete todos los campos obligatorios")

// Field campo de formulario con su etiqueta.
type Field struct {
	Label string
	Value string
}

// RequireFields única validación en cliente: los campos obligatorios no pueden ir vacíos.
// El error nombra los campos faltantes en el orden recibido.
func RequireFields(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Label)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingFieldsError{Fields: missing}
}

// MissingFieldsError detalle de ErrMissingFields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error { return ErrMissingFields }
