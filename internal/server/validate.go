package server

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/tutorly/internal/heuristics"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		_, err := heuristics.ParseLevel(fl.Field().String())
		return err == nil
	})

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"required": "is required",
	"notblank": "must not be blank",
	"level":    "must be beginner, intermediate or advanced",
}

// bindAndValidate parses the JSON body into req and validates it. When it
// returns false the error response has already been written.
func (s *Server) bindAndValidate(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	err := s.validate.Struct(req)
	if err == nil {
		return true, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		// Namespace is "questionRequest.text"; drop the struct name.
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		fields[ns] = msg
	}
	return false, ValidationErrorResponse(c, fields)
}
