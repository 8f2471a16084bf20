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

var _ repository.PersonProfileRepository = (*PersonProfileRepo)(nil)

// PersonProfileRepo implementación de PersonProfileRepository (usable con pool o tx).
type PersonProfileRepo struct {
	q Querier
}

// NewPersonProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonProfileRepository(q Querier) *PersonProfileRepo {
	return &PersonProfileRepo{q: q}
}

// Create persiste el perfil de persona. El uno-a-uno con User lo garantiza el
// constraint único sobre user_id.
func (r *PersonProfileRepo) Create(profile *entity.PersonProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	query := `
		INSERT INTO person_profiles (id, user_id, name, national_id, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.UserID, profile.Name, profile.NationalID, profile.Phone,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert person profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil de persona por ID. Retorna (nil, nil) si no existe.
func (r *PersonProfileRepo) GetByID(id string) (*entity.PersonProfile, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil de persona de un usuario. Retorna (nil, nil) si no existe.
func (r *PersonProfileRepo) GetByUserID(userID string) (*entity.PersonProfile, error) {
	return r.getOne(`WHERE user_id = $1`, userID)
}

func (r *PersonProfileRepo) getOne(where string, arg any) (*entity.PersonProfile, error) {
	query := `
		SELECT id, user_id, name, national_id, phone, created_at, updated_at
		FROM person_profiles ` + where
	var p entity.PersonProfile
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.UserID, &p.Name, &p.NationalID, &p.Phone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person profile: %w", err)
	}
	return &p, nil
}
