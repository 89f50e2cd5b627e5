package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/panel-admin-api/internal/application/dto"
)

// Validator envuelve go-playground/validator y traduce las violaciones a un
// mapa campo → mensajes legibles. Reporta todos los campos violados en una
// sola pasada (primera violación por campo).
type Validator struct {
	v *validator.Validate
}

// New construye el validador. Los campos se reportan por su nombre JSON.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida s contra sus tags. Devuelve nil si pasa.
func (x *Validator) Struct(s any) dto.FieldErrors {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: s no es un struct válido; error de programación.
		return dto.FieldErrors{"_": {err.Error()}}
	}
	out := dto.FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], messageFor(fe))
	}
	return out
}

// messageFor produce el mensaje de cara al usuario para una violación.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "customer_id":
			return "Please select a customer."
		case "status":
			return "Please select an invoice status."
		case "amount":
			return "Please enter an amount."
		}
		return fmt.Sprintf("Please enter a %s.", fe.Field())
	case "email":
		return "Please enter a valid email address."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", titleField(fe.Field()), fe.Param())
	case "oneof":
		if fe.Field() == "status" {
			return "Please select an invoice status."
		}
		return fmt.Sprintf("Please select a valid %s.", fe.Field())
	}
	return fmt.Sprintf("Invalid %s.", fe.Field())
}

func titleField(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
