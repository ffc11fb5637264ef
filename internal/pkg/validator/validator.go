package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"fyyur/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	phonePattern    = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)
	facebookPattern = regexp.MustCompile(`^https?://(www\.)?facebook\.com/.*`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	mustRegister("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister("facebook", func(fl validator.FieldLevel) bool {
		return facebookPattern.MatchString(fl.Field().String())
	})
	mustRegister("genre", func(fl validator.FieldLevel) bool {
		return domain.IsGenre(fl.Field().String())
	})
	mustRegister("usstate", func(fl validator.FieldLevel) bool {
		return domain.IsState(fl.Field().String())
	})
	mustRegister("timeofday", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Validate struct fields. The result maps json paths such as
// "availabilities[0].start_time" to a readable message, or is nil.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		errors[fieldPath(fe)] = message(fe)
	}
	return errors
}

// fieldPath drops the leading struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "phone":
		return "must be in the format XXX-XXX-XXXX"
	case "facebook":
		return "must be a valid Facebook URL"
	case "url":
		return "must be a valid URL"
	case "genre":
		return "is not a recognised genre"
	case "usstate":
		return "must be a US state code"
	case "timeofday":
		return "must be a time of day like 18:00"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fe.Tag()
	}
}
