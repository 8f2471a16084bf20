package domain

import (
	"net/mail"
	"regexp"
	"strings"
)

// Tipos de cuenta. Un admin puede no tener tipo (Kind vacío); cualquier
// usuario no-admin debe tener exactamente uno.
const (
	KindCompany = "company"
	KindPerson  = "person"
)

// ValidKind reporta si kind es uno de los dos tipos aprovisionables.
func ValidKind(kind string) bool {
	return kind == KindCompany || kind == KindPerson
}

// NIT empresa: exactamente 9 dígitos. Cédula persona: exactamente 11 dígitos.
var (
	companyTaxIDPattern     = regexp.MustCompile(`^\d{9}$`)
	personNationalIDPattern = regexp.MustCompile(`^\d{11}$`)
)

// ValidCompanyTaxID reporta si el identificador fiscal de empresa tiene el formato exigido.
func ValidCompanyTaxID(taxID string) bool {
	return companyTaxIDPattern.MatchString(taxID)
}

// ValidPersonNationalID reporta si el documento de identidad de persona tiene el formato exigido.
func ValidPersonNationalID(nationalID string) bool {
	return personNationalIDPattern.MatchString(nationalID)
}

// NormalizeEmail normaliza el email para búsqueda y unicidad (trim + minúsculas).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reporta si el email es sintácticamente válido.
// Se rechazan formas con display name ("Nombre <a@b.com>"): solo la dirección.
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
