package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hotelops/hotel-console/internal/core/domain"
)

// consoleValidator lets Echo validate console forms with c.Validate(form).
// Messages name fields by their JSON key, the spelling the browser sent.
type consoleValidator struct {
	v *validator.Validate
}

// NewValidator returns a validator ready to be assigned to echo.Echo.Validator.
func NewValidator() *consoleValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return domain.UserRole(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("roomstatus", func(fl validator.FieldLevel) bool {
		return domain.RoomStatus(fl.Field().String()).Valid()
	})
	return &consoleValidator{v: v}
}

func (cv *consoleValidator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "userrole":
		return field + " must be one of ADMIN, FRONT_DESK, HOUSEKEEPING, MAINTENANCE, GUEST"
	case "roomstatus":
		return field + " must be one of READY, CLEANING, MAINTENANCE, OCCUPIED, OUT_OF_ORDER"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
