package validator

import (
	stdErrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/one-on-one-manager/errors"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return &CustomValidator{v: v}
}

// Validate performs struct validation. Failures come back as a 400 AppError
// with one detail per offending field.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	appErr := errors.ErrValidation(err)
	var fieldErrs validator.ValidationErrors
	if stdErrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			appErr = appErr.WithDetail(fe.Field(), fe.Tag())
		}
	}
	return appErr
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
