package usecase

import (
	"github.com/tu-usuario/comercio-pro/internal/application/dto"
	"github.com/tu-usuario/comercio-pro/internal/application/provisioning"
	"github.com/tu-usuario/comercio-pro/internal/domain"
	"github.com/tu-usuario/comercio-pro/internal/domain/repository"
)

// UserUseCase consultas y administración de cuentas ya aprovisionadas.
// El alta de cuentas vive en el paquete provisioning.
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyProfileRepository
	persons   repository.PersonProfileRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(
	users repository.UserRepository,
	companies repository.CompanyProfileRepository,
	persons repository.PersonProfileRepository,
) *UserUseCase {
	return &UserUseCase{users: users, companies: companies, persons: persons}
}

// GetAccount retorna el usuario con su perfil según kind. Para cuentas admin
// sin kind el perfil viene nil.
func (uc *UserUseCase) GetAccount(userID string) (*dto.AccountResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := &dto.AccountResponse{User: *provisioning.ToUserResponse(user)}

	switch user.Kind {
	case domain.KindCompany:
		profile, err := uc.companies.GetByUserID(user.ID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			resp.Profile = &dto.ProfileResponse{
				ID:    profile.ID,
				Name:  profile.Name,
				TaxID: profile.TaxID,
				Phone: profile.Phone,
			}
		}
	case domain.KindPerson:
		profile, err := uc.persons.GetByUserID(user.ID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			resp.Profile = &dto.ProfileResponse{
				ID:         profile.ID,
				Name:       profile.Name,
				NationalID: profile.NationalID,
				Phone:      profile.Phone,
			}
		}
	}
	return resp, nil
}

// List lista usuarios con paginación (solo admin).
func (uc *UserUseCase) List(page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	list, err := uc.users.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *provisioning.ToUserResponse(u))
	}
	return items, nil
}

// Deactivate marca una cuenta como inactiva. Sus tokens de refresh dejan de
// servir en la siguiente rotación.
func (uc *UserUseCase) Deactivate(userID string) error {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.Deactivate(userID)
}
