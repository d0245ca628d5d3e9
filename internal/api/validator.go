package api

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

// phMobileRe accepts the local mobile formats: 09XXXXXXXXX or the
// international +639XXXXXXXXX form.
var phMobileRe = regexp.MustCompile(`^(09\d{9}|\+639\d{9})$`)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	_ = validate.RegisterValidation("ph_mobile", func(fl validator.FieldLevel) bool {
		return phMobileRe.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewBadRequest(err.Error())
	}
	return nil
}
