package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/comercio-pro/internal/domain"
)

// NIT de empresa: exactamente 9 dígitos, ni más ni menos.
func TestValidCompanyTaxID(t *testing.T) {
	assert.True(t, domain.ValidCompanyTaxID("123456789"))
	assert.True(t, domain.ValidCompanyTaxID("000000001"))

	assert.False(t, domain.ValidCompanyTaxID("12345"), "muy corto")
	assert.False(t, domain.ValidCompanyTaxID("1234567890"), "muy largo")
	assert.False(t, domain.ValidCompanyTaxID("12345678a"), "no numérico")
	assert.False(t, domain.ValidCompanyTaxID(" 123456789"), "espacios no permitidos")
	assert.False(t, domain.ValidCompanyTaxID(""))
}

// Cédula de persona: exactamente 11 dígitos.
func TestValidPersonNationalID(t *testing.T) {
	assert.True(t, domain.ValidPersonNationalID("12345678901"))

	assert.False(t, domain.ValidPersonNationalID("123"), "muy corto")
	assert.False(t, domain.ValidPersonNationalID("123456789012"), "muy largo")
	assert.False(t, domain.ValidPersonNationalID("123456789"), "longitud de empresa, no de persona")
	assert.False(t, domain.ValidPersonNationalID("1234567890a"))
	assert.False(t, domain.ValidPersonNationalID(""))
}

func TestValidKind(t *testing.T) {
	assert.True(t, domain.ValidKind(domain.KindCompany))
	assert.True(t, domain.ValidKind(domain.KindPerson))
	assert.False(t, domain.ValidKind(""))
	assert.False(t, domain.ValidKind("admin"))
	assert.False(t, domain.ValidKind("Company"), "sensible a mayúsculas")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", domain.NormalizeEmail("  A@X.Com "))
	assert.Equal(t, "a@x.com", domain.NormalizeEmail("a@x.com"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, domain.ValidEmail("a@x.com"))
	assert.True(t, domain.ValidEmail("usuario.con+tag@dominio.co"))

	assert.False(t, domain.ValidEmail("sin-arroba"))
	assert.False(t, domain.ValidEmail("a@"))
	assert.False(t, domain.ValidEmail(""))
	assert.False(t, domain.ValidEmail("Nombre <a@x.com>"), "solo la dirección, sin display name")
}
