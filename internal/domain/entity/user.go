package entity

import "time"

// User representa una cuenta del sistema. Kind discrimina entre cuenta de
// empresa y de persona; solo los admins pueden no tener Kind.
type User struct {
	ID           string
	Email        string // normalizado (minúsculas), único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Kind         string // "company" | "person" | "" (solo admin)
	IsActive     bool   // desactivación suave en lugar de borrado
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsCompany reporta si la cuenta es de tipo empresa.
func (u *User) IsCompany() bool { return u.Kind == "company" }

// IsPerson reporta si la cuenta es de tipo persona.
func (u *User) IsPerson() bool { return u.Kind == "person" }
