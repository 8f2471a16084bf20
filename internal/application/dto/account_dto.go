package dto

import "time"

// ProfileInput datos del perfil en el registro. Variante cerrada discriminada
// por el kind de la petición: para "company" aplican Name/TaxID/Phone, para
// "person" aplican Name/NationalID/Phone. Nada de bolsas de atributos.
type ProfileInput struct {
	Name       string `json:"name"`
	TaxID      string `json:"tax_id,omitempty"`      // empresa: 9 dígitos
	NationalID string `json:"national_id,omitempty"` // persona: 11 dígitos
	Phone      string `json:"phone"`
}

// ProvisionRequest entrada del registro de cuenta: usuario + perfil, atómico.
type ProvisionRequest struct {
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Kind     string       `json:"kind"` // "company" | "person"
	Profile  ProfileInput `json:"profile"`
}

// UserResponse salida de un usuario (sin credenciales).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind,omitempty"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileResponse salida del perfil de la cuenta (empresa o persona, según kind).
type ProfileResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TaxID      string `json:"tax_id,omitempty"`
	NationalID string `json:"national_id,omitempty"`
	Phone      string `json:"phone"`
}

// AccountResponse usuario más su perfil (para GET /accounts/me).
type AccountResponse struct {
	User    UserResponse     `json:"user"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}
