// Package validation provides custom validation rules for the application.
package validation

import (
	"net/mail"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank", "must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "cannot be blank")
	}
	return nil
})

// CPF validates a Brazilian individual taxpayer number (11 digits with
// two check digits). Non-digit characters are stripped before checking.
var CPF = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_cpf", "CPF must be a string")
	}
	if !IsValidCPF(s) {
		return validation.NewError("validation_cpf", "invalid CPF")
	}
	return nil
})

// CNPJ validates a Brazilian company registration number (14 digits with
// two check digits). Non-digit characters are stripped before checking.
var CNPJ = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_cnpj", "CNPJ must be a string")
	}
	if !IsValidCNPJ(s) {
		return validation.NewError("validation_cnpj", "invalid CNPJ")
	}
	return nil
})

// Email validates an email address. Empty values are skipped so the rule can
// be applied to optional fields.
var Email = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_email", "must be a string")
	}
	if s == "" {
		return nil
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return validation.NewError("validation_email", "invalid email address")
	}
	return nil
})

// NormalizeDocument strips every non-digit character from a document number.
func NormalizeDocument(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF reports whether the document is a valid CPF after normalization.
// Repeated-digit sequences (e.g. "11111111111") are rejected even though
// their check digits are formally consistent.
func IsValidCPF(doc string) bool {
	cpf := NormalizeDocument(doc)
	if len(cpf) != 11 || allSameDigits(cpf) {
		return false
	}

	// First check digit: weights 10..2 over the first nine digits.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	if checkDigitMod11(sum) != int(cpf[9]-'0') {
		return false
	}

	// Second check digit: weights 11..2 over the first ten digits.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	return checkDigitMod11(sum) == int(cpf[10]-'0')
}

// cnpjWeights holds the multiplier sequence for the second CNPJ check digit.
// The first check digit uses the same sequence shifted by one position.
var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// IsValidCNPJ reports whether the document is a valid CNPJ after normalization.
func IsValidCNPJ(doc string) bool {
	cnpj := NormalizeDocument(doc)
	if len(cnpj) != 14 || allSameDigits(cnpj) {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(cnpj[i]-'0') * cnpjWeights[i+1]
	}
	if checkDigitMod11(sum) != int(cnpj[12]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 13; i++ {
		sum += int(cnpj[i]-'0') * cnpjWeights[i]
	}
	return checkDigitMod11(sum) == int(cnpj[13]-'0')
}

// checkDigitMod11 computes a mod-11 check digit: remainders below 2 map to 0.
func checkDigitMod11(sum int) int {
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
