package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/comercio-pro/internal/application/dto"
	"github.com/tu-usuario/comercio-pro/internal/domain"
	"github.com/tu-usuario/comercio-pro/internal/domain/entity"
	"github.com/tu-usuario/comercio-pro/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción. Si fn retorna
// error, nada de lo escrito dentro queda persistido.
type TxRunner interface {
	RunProvision(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		companyRepo repository.CompanyProfileRepository,
		personRepo repository.PersonProfileRepository,
	) error) error
}

// UseCase aprovisiona cuentas: crea el usuario y su perfil como una sola
// unidad atómica. Un usuario sin perfil (o al revés) es un estado de dominio
// inválido; la atomicidad es la garantía central de este caso de uso.
type UseCase struct {
	tx         TxRunner
	bcryptCost int
}

// NewUseCase construye el caso de uso. bcryptCost 0 usa bcrypt.DefaultCost.
func NewUseCase(tx TxRunner, bcryptCost int) *UseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UseCase{tx: tx, bcryptCost: bcryptCost}
}

// Provision crea un usuario con su perfil en una transacción.
//
// Toda la validación ocurre antes de abrir la transacción: si algo está mal
// formado no se escribe nada. Dentro de la transacción, cualquier fallo
// (email duplicado, nombre de empresa tomado, perfil ya existente) aborta la
// operación completa; el error se envuelve en domain.ErrProvisioningFailed y
// conserva la causa para diagnóstico (errors.Is matchea ambos).
//
// Resultados terminales observables: la cuenta completa, o un error sin
// ningún estado parcial persistido.
func (uc *UseCase) Provision(ctx context.Context, in dto.ProvisionRequest) (*dto.UserResponse, error) {
	if !domain.ValidKind(in.Kind) {
		return nil, domain.ErrInvalidKind
	}
	email := domain.NormalizeEmail(in.Email)
	if !domain.ValidEmail(email) {
		return nil, domain.ErrInvalidInput
	}
	if in.Password == "" || in.Profile.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Kind {
	case domain.KindCompany:
		if !domain.ValidCompanyTaxID(in.Profile.TaxID) {
			return nil, domain.ErrInvalidIdentifier
		}
	case domain.KindPerson:
		if !domain.ValidPersonNationalID(in.Profile.NationalID) {
			return nil, domain.ErrInvalidIdentifier
		}
	}

	// bcrypt es costoso a propósito; fuera de la transacción.
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Profile.Name,
		Kind:         in.Kind,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunProvision(ctx, func(
		userRepo repository.UserRepository,
		companyRepo repository.CompanyProfileRepository,
		personRepo repository.PersonProfileRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		switch in.Kind {
		case domain.KindCompany:
			return companyRepo.Create(&entity.CompanyProfile{
				ID:        uuid.New().String(),
				UserID:    user.ID,
				Name:      in.Profile.Name,
				TaxID:     in.Profile.TaxID,
				Phone:     in.Profile.Phone,
				CreatedAt: now,
				UpdatedAt: now,
			})
		default:
			return personRepo.Create(&entity.PersonProfile{
				ID:         uuid.New().String(),
				UserID:     user.ID,
				Name:       in.Profile.Name,
				NationalID: in.Profile.NationalID,
				Phone:      in.Profile.Phone,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
	}

	return ToUserResponse(user), nil
}

// ProvisionAdmin crea una cuenta de administrador (sin kind y sin perfil).
// Bootstrap inicial del sistema; ver cmd/seed_admin.
func (uc *UseCase) ProvisionAdmin(ctx context.Context, email, password, name string) (*dto.UserResponse, error) {
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) {
		return nil, domain.ErrInvalidInput
	}
	if password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		IsActive:     true,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunProvision(ctx, func(
		userRepo repository.UserRepository,
		_ repository.CompanyProfileRepository,
		_ repository.PersonProfileRepository,
	) error {
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
	}

	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad al DTO de salida (sin credenciales).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Kind:      u.Kind,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
