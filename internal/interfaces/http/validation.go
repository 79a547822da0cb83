package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores nombran el campo JSON, no el de Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseAndValidate decodifica el cuerpo y aplica las etiquetas validate.
// Si algo falla ya deja escrita la respuesta 400 y devuelve ok=false.
func parseAndValidate(c *fiber.Ctx, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, invalidBody(c)
	}
	if err := validate.Struct(out); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return false, badRequest(c, "VALIDATION", validationMessage(ve))
		}
		return false, badRequest(c, "VALIDATION", err.Error())
	}
	return true, nil
}

func validationMessage(errs validator.ValidationErrors) string {
	var missing, invalid []string
	for _, fe := range errs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fe.Field())
	}
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "campos requeridos: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "campos inválidos: "+strings.Join(invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// pathID lee el parámetro :id como entero positivo.
func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
