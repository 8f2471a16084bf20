package repository

import "github.com/tu-usuario/comercio-pro/internal/domain/entity"

// CompanyProfileRepository define el puerto de persistencia para CompanyProfile.
// Create retorna domain.ErrCompanyNameTaken o domain.ErrProfileAlreadyExists
// según el constraint único violado.
type CompanyProfileRepository interface {
	Create(profile *entity.CompanyProfile) error
	GetByID(id string) (*entity.CompanyProfile, error)
	GetByUserID(userID string) (*entity.CompanyProfile, error)
}

// PersonProfileRepository define el puerto de persistencia para PersonProfile.
type PersonProfileRepository interface {
	Create(profile *entity.PersonProfile) error
	GetByID(id string) (*entity.PersonProfile, error)
	GetByUserID(userID string) (*entity.PersonProfile, error)
}
