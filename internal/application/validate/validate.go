// Package validate valida los DTOs de entrada con go-playground/validator y
// devuelve errores por campo usando los nombres de los tags json, para que
// el cliente reciba exactamente el campo que envió mal.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return val
}

// Struct valida el DTO. Devuelve nil si es válido; si no, un mapa
// campo → mensaje legible.
func Struct(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = messageFor(fe)
	}
	return out
}

// fieldPath recorta el nombre del struct raíz del namespace:
// "CreateInvoiceRequest.items[0].description" → "items[0].description".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obligatorio"
	case "email":
		return "email inválido"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("se requiere al menos %s elemento(s)", fe.Param())
		}
		return fmt.Sprintf("longitud mínima %s", fe.Param())
	case "len":
		return fmt.Sprintf("longitud exacta %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %q", fe.Tag())
	}
}
