package exts

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validation.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError carries the failed rule of every invalid field, keyed by its json name.
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	return "request body is invalid"
}

func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ValidateStruct(out)
}

func ValidateStruct(in any) error {
	err := validation.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, item := range fieldErrs {
		if len(item.Param()) > 0 {
			fields[item.Field()] = item.Tag() + "=" + item.Param()
		} else {
			fields[item.Field()] = item.Tag()
		}
	}
	return &ValidationError{Fields: fields}
}
