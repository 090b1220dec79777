package validation

import (
	"errors"
	"testing"

	customError "github.com/segyhp/easy-service/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCPF(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "123.456.789-09", valid: true},
		{input: "12345678909", valid: true},
		{input: "111.111.111-11", valid: false},
		{input: "00000000000", valid: false},
		{input: "000.000.000-00", valid: false},
		{input: "123.456.78909", valid: false},
		{input: "1234567890", valid: false},
		{input: "123456789012", valid: false},
		{input: "abc.def.ghi-jk", valid: false},
		{input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCPF(tt.input))
		})
	}
}

func TestValidateCPFMessages(t *testing.T) {
	err := ValidateCPF("")
	var ve *customError.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "CPF não preenchido.", ve.Message)

	err = ValidateCPF("222.222.222-22")
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "CPF inválido.", ve.Message)
	assert.ErrorIs(t, err, customError.ErrValidation)

	assert.NoError(t, ValidateCPF("123.456.789-09"))
}

func TestFormatAndNormalizeCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-09", FormatCPF("12345678909"))
	assert.Equal(t, "123.456.789-09", FormatCPF("123.456.789-09"))
	assert.Equal(t, "12345678909", NormalizeCPF("123.456.789-09"))
}

func TestIsBRL(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "1.234,56", valid: true},
		{input: "1234,56", valid: true},
		{input: "100", valid: true},
		{input: "0,99", valid: true},
		{input: "5,5", valid: true},
		{input: "999.999.999,99", valid: true},
		{input: "1.000.000.000", valid: false},
		{input: "0123", valid: false},
		{input: "12,345", valid: false},
		{input: "1,", valid: false},
		{input: "1.23", valid: false},
		{input: "", valid: false},
		{input: "-10", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsBRL(tt.input))
		})
	}
}

func TestParseBRL(t *testing.T) {
	value, err := ParseBRL("1.234,56")
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("1234.56")))

	_, err = ParseBRL("")
	var ve *customError.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Entrada de valor em reais não preenchida.", ve.Message)

	_, err = ParseBRL("12,3456")
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Entrada de valor em reais inválida.", ve.Message)
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "(11) 91234-5678", valid: true},
		{input: "11912345678", valid: true},
		{input: "(21) 3456-7890", valid: true},
		{input: "61 3456 7890", valid: true},
		{input: "(20) 91234-5678", valid: false},
		{input: "(10) 91234-5678", valid: false},
		{input: "91234-5678", valid: false},
		{input: "(11) 1234-567", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPhone(tt.input))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 91234-5678", FormatPhone("11912345678"))
	assert.Equal(t, "(21) 3456-7890", FormatPhone("21 3456 7890"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("agent@example.com"))
	assert.True(t, IsEmail("First.Last@Example.COM.BR"))
	assert.True(t, IsEmail("a-b_c@mail-server.org"))
	assert.False(t, IsEmail("agent@example"))
	assert.False(t, IsEmail("@example.com"))
	assert.False(t, IsEmail("agent.example.com"))
	assert.False(t, IsEmail("agent@example.c"))
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, 29, day.Day())

	_, err = ParseDate("30/02/2024")
	assert.ErrorIs(t, err, customError.ErrValidation)

	_, err = ParseDate("2024-02-01")
	assert.Error(t, err)
}

func TestParseIntInRange(t *testing.T) {
	value, err := ParseIntInRange(FieldInstallments, "12", 1, 24)
	require.NoError(t, err)
	assert.Equal(t, 12, value)

	_, err = ParseIntInRange(FieldInstallments, "25", 1, 24)
	assert.ErrorIs(t, err, customError.ErrValidation)

	_, err = ParseIntInRange(FieldInstallments, "x", 1, 24)
	assert.ErrorIs(t, err, customError.ErrValidation)
}
