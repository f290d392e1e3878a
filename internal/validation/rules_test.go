package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"valid CPF", "52998224725", true},
		{"valid CPF with punctuation", "529.982.247-25", true},
		{"wrong first check digit", "52998224735", false},
		{"wrong second check digit", "52998224726", false},
		{"transposed digits", "25998224725", false},
		{"too short", "123", false},
		{"too long", "529982247250", false},
		{"all same digits", "11111111111", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCPF(tt.cpf))
		})
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name string
		cnpj string
		want bool
	}{
		{"valid CNPJ", "11222333000181", true},
		{"valid CNPJ with punctuation", "11.222.333/0001-81", true},
		{"wrong check digit", "11222333000182", false},
		{"too short", "1122233300018", false},
		{"all same digits", "11111111111111", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCNPJ(tt.cnpj))
		})
	}
}

func TestNormalizeDocument(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeDocument("529.982.247-25"))
	assert.Equal(t, "11222333000181", NormalizeDocument("11.222.333/0001-81"))
	assert.Equal(t, "", NormalizeDocument("abc"))
	assert.Equal(t, "123", NormalizeDocument(" 1 2 3 "))
}

func TestCPFRule(t *testing.T) {
	assert.NoError(t, CPF.Validate("52998224725"))
	assert.Error(t, CPF.Validate("12345678900"))
}

func TestCNPJRule(t *testing.T) {
	assert.NoError(t, CNPJ.Validate("11222333000181"))
	assert.Error(t, CNPJ.Validate("11222333000199"))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate("   "))
	assert.Error(t, NotBlank.Validate(""))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	err := WrapValidationError(apperrors.New("field is required"))
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
}
