package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var roomNumberRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("room_number", func(fl validator.FieldLevel) bool {
		return roomNumberRe.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
