package entity

import "time"

// CompanyProfile perfil de cuenta empresa: exactamente uno por User con Kind "company".
type CompanyProfile struct {
	ID        string
	UserID    string // FK único: cierra el uno-a-uno en la base
	Name      string // razón social, única global
	TaxID     string // NIT: exactamente 9 dígitos
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PersonProfile perfil de cuenta persona: exactamente uno por User con Kind "person".
// El nombre no es único (a diferencia del de empresa).
type PersonProfile struct {
	ID         string
	UserID     string
	Name       string
	NationalID string // cédula: exactamente 11 dígitos
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
