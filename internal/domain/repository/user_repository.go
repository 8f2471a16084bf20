package repository

import "github.com/tu-usuario/comercio-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByEmail espera el email ya normalizado (ver domain.NormalizeEmail).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	// Deactivate marca la cuenta como inactiva. No hay borrado físico de usuarios.
	Deactivate(id string) error
}
