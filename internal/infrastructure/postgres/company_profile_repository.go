package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/comercio-pro/internal/domain/entity"
	"github.com/tu-usuario/comercio-pro/internal/domain/repository"
)

var _ repository.CompanyProfileRepository = (*CompanyProfileRepo)(nil)

// CompanyProfileRepo implementación de CompanyProfileRepository (usable con pool o tx).
type CompanyProfileRepo struct {
	q Querier
}

// NewCompanyProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyProfileRepository(q Querier) *CompanyProfileRepo {
	return &CompanyProfileRepo{q: q}
}

// Create persiste el perfil de empresa. El uno-a-uno con User y la unicidad
// del nombre los garantizan los constraints de la base.
func (r *CompanyProfileRepo) Create(profile *entity.CompanyProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	query := `
		INSERT INTO company_profiles (id, user_id, name, tax_id, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.UserID, profile.Name, profile.TaxID, profile.Phone,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert company profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil de empresa por ID. Retorna (nil, nil) si no existe.
func (r *CompanyProfileRepo) GetByID(id string) (*entity.CompanyProfile, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil de empresa de un usuario. Retorna (nil, nil) si no existe.
func (r *CompanyProfileRepo) GetByUserID(userID string) (*entity.CompanyProfile, error) {
	return r.getOne(`WHERE user_id = $1`, userID)
}

func (r *CompanyProfileRepo) getOne(where string, arg any) (*entity.CompanyProfile, error) {
	query := `
		SELECT id, user_id, name, tax_id, phone, created_at, updated_at
		FROM company_profiles ` + where
	var p entity.CompanyProfile
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.UserID, &p.Name, &p.TaxID, &p.Phone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return &p, nil
}
