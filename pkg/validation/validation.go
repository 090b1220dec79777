// Package validation holds the input rules agents' form fields must satisfy:
// CPF, BRL amounts, phone numbers, e-mails, dates and bounded integers.
// Failures are reported as *errors.ValidationError with a Portuguese message
// ready to be shown on the status line.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/money"
	"github.com/segyhp/easy-service/pkg/utils"

	"github.com/shopspring/decimal"
)

var (
	cpfPattern       = regexp.MustCompile(`^(?:\d{11}|\d{3}\.\d{3}\.\d{3}-\d{2})$`)
	cpfPartsPattern  = regexp.MustCompile(`(\d{3})\.?(\d{3})\.?(\d{3})-?(\d{2})`)
	brlPattern       = regexp.MustCompile(`^(?:[1-9]\d{0,2}(?:\.?\d{3}){0,2}|0)(?:,\d{1,2})?$`)
	phonePattern     = regexp.MustCompile(`^\(?(?:[14689][1-9]|2[12478]|3[1234578]|5[1345]|7[13457])\)?\s{0,2}9?\s?\d{4}[\s-]?\d{4}$`)
	phonePartPattern = regexp.MustCompile(`^\(?(\d{2})\)?\s{0,2}(9?)\s?(\d{4})[\s-]?(\d{4})$`)
	emailPattern     = regexp.MustCompile(`(?i)^(?:[a-z0-9]+[._-])*[a-z0-9]+@[a-z0-9-]+(?:\.[a-z]{2,})+$`)
	nonDigitPattern  = regexp.MustCompile(`\D`)
)

// Field names carried by ValidationError.
const (
	FieldCPF          = "cpf"
	FieldAmount       = "amount"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldDate         = "date"
	FieldInstallments = "installments"
)

// IsCPF reports whether s has the shape of a CPF, punctuated or not.
// Sequences made of a single repeated digit are rejected. The check
// digits are not verified.
func IsCPF(s string) bool {
	if !cpfPattern.MatchString(s) {
		return false
	}
	digits := NormalizeCPF(s)
	return strings.Count(digits, digits[:1]) != len(digits)
}

func ValidateCPF(s string) error {
	if s == "" {
		return customError.NewValidationError(FieldCPF, "CPF não preenchido.")
	}
	if !IsCPF(s) {
		return customError.NewValidationError(FieldCPF, "CPF inválido.")
	}
	return nil
}

// FormatCPF renders a CPF as ###.###.###-##.
func FormatCPF(s string) string {
	return cpfPartsPattern.ReplaceAllString(s, "$1.$2.$3-$4")
}

// NormalizeCPF strips the punctuation of a CPF.
func NormalizeCPF(s string) string {
	return nonDigitPattern.ReplaceAllString(s, "")
}

// IsBRL reports whether s is a BRL amount such as "1.234,56", "1234,5" or "0,99".
func IsBRL(s string) bool {
	return brlPattern.MatchString(s)
}

// ParseBRL validates and converts a BRL amount.
func ParseBRL(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, customError.NewValidationError(FieldAmount, "Entrada de valor em reais não preenchida.")
	}
	if !IsBRL(s) {
		return decimal.Zero, customError.NewValidationError(FieldAmount, "Entrada de valor em reais inválida.")
	}
	value, err := money.Parse(s)
	if err != nil {
		return decimal.Zero, customError.NewValidationError(FieldAmount, "Entrada de valor em reais inválida.")
	}
	return value, nil
}

// IsPhone reports whether s is a Brazilian phone number with a known area code.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func ValidatePhone(s string) error {
	if s == "" {
		return customError.NewValidationError(FieldPhone, "Telefone não preenchido.")
	}
	if !IsPhone(s) {
		return customError.NewValidationError(FieldPhone, "Telefone inválido.")
	}
	return nil
}

// FormatPhone renders a phone number as "(AA) 9XXXX-XXXX".
func FormatPhone(s string) string {
	return phonePartPattern.ReplaceAllString(s, "($1) $2$3-$4")
}

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func ValidateEmail(s string) error {
	if s == "" {
		return customError.NewValidationError(FieldEmail, "E-mail não preenchido.")
	}
	if !IsEmail(s) {
		return customError.NewValidationError(FieldEmail, "E-mail inválido.")
	}
	return nil
}

// ParseDate parses a dd/mm/yyyy date.
func ParseDate(s string) (time.Time, error) {
	day, err := time.Parse(utils.DateLayout, s)
	if err != nil {
		return time.Time{}, customError.NewValidationError(FieldDate, "Data inválida.")
	}
	return day, nil
}

func IsDate(s string) bool {
	_, err := time.Parse(utils.DateLayout, s)
	return err == nil
}

// ParseIntInRange parses s and checks min <= value <= max.
func ParseIntInRange(field, s string, min, max int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, customError.NewValidationError(field, "Número inteiro inválido.")
	}
	if err := ValidateIntInRange(field, value, min, max); err != nil {
		return 0, err
	}
	return value, nil
}

func ValidateIntInRange(field string, value, min, max int) error {
	if value < min || value > max {
		return customError.NewValidationError(field,
			"O valor deve estar entre "+strconv.Itoa(min)+" e "+strconv.Itoa(max)+".")
	}
	return nil
}
