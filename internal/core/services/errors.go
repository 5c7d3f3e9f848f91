package services

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/srgjo27/cabin_portal/internal/core/ports"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInFlight        = errors.New("action already in progress")
)

const msgUnavailable = "La cabaña no está disponible en ese rango de fechas."

// ValidationError is detected locally and never sent upstream.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RejectedError carries a business-rule refusal, shown to the user verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// ConfirmationRequiredError asks the caller to repeat the action with an explicit confirmation.
type ConfirmationRequiredError struct {
	Message string
}

func (e *ConfirmationRequiredError) Error() string {
	return e.Message
}

// rejection turns an upstream business error into a RejectedError and leaves
// everything else untouched.
func rejection(err error) error {
	var apiErr *ports.APIError
	if errors.As(err, &apiErr) && !apiErr.IsAuth() && apiErr.Status >= 400 && apiErr.Status < 500 {
		if apiErr.Status == 404 {
			return ports.ErrNotFound
		}

		return &RejectedError{Message: apiErr.Message}
	}

	return err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(f.Name)
		}

		return name
	})

	return v
}

// validateStruct reports the first failing field as a ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		log.Printf("validator: %v", err)
		return invalid("", "Datos inválidos.")
	}

	fe := verrs[0]
	return invalid(fe.Field(), fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "email":
		return "Ingresa un email válido."
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres.", fe.Param())
	case "eqfield":
		return "Las contraseñas no coinciden."
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual a %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s.", fe.Param())
	case "url":
		return "Ingresa una URL válida."
	}

	return "Valor inválido."
}
