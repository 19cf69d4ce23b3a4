package chatconfig

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the static bounds of every field.
func Validate(cfg Configuration) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate configuration: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s must be %s %s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
