package types

import (
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

func LocaleTagValidation(fl validator.FieldLevel) bool {
	_, err := language.Parse(fl.Field().String())
	return err == nil
}

func UnitValidation(fl validator.FieldLevel) bool {
	return NormalizeUnit(fl.Field().String()) != ""
}

func RegisterTypeValidation(v *validator.Validate) {
	v.RegisterValidation("bcp47", LocaleTagValidation)
	v.RegisterValidation("unit", UnitValidation)
}
