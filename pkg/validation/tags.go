package validation

import (
	"errors"
	"fmt"

	customError "github.com/segyhp/easy-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

var tagMessages = map[string]string{
	"cpf":      "Preencha o CPF corretamente.",
	"brl":      "Entrada de valor em reais inválida.",
	"br_phone": "Preencha o telefone corretamente.",
	"br_email": "Preencha o email corretamente.",
	"br_date":  "Data inválida.",
}

// New returns a validator with the cpf, brl, br_phone, br_email and br_date tags registered.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := RegisterTags(v); err != nil {
		return nil, err
	}
	return v, nil
}

func RegisterTags(v *validator.Validate) error {
	funcs := map[string]func(string) bool{
		"cpf":      IsCPF,
		"brl":      IsBRL,
		"br_phone": IsPhone,
		"br_email": IsEmail,
		"br_date":  IsDate,
	}

	for tag, fn := range funcs {
		check := fn
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}

// Translate turns the first failure reported by validator into a ValidationError.
// Other errors are returned unchanged.
func Translate(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return customError.NewValidationError(fe.Field(), msg)
	}

	switch fe.Tag() {
	case "required":
		return customError.NewValidationError(fe.Field(), fmt.Sprintf("Preencha o campo %s.", fe.Field()))
	case "min", "max", "gte", "lte", "gt", "lt":
		return customError.NewValidationError(fe.Field(),
			fmt.Sprintf("Valor fora do intervalo permitido para %s.", fe.Field()))
	default:
		return customError.NewValidationError(fe.Field(), fmt.Sprintf("Campo %s inválido.", fe.Field()))
	}
}
