package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tu-usuario/comercio-pro/internal/domain"
)

// Querier es el subconjunto de la API de pgx que usan los repositorios.
// Lo satisfacen *pgxpool.Pool y pgx.Tx, así un mismo repositorio funciona
// contra el pool o atado a una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueConstraint devuelve el nombre del constraint si err es una violación
// de unicidad (SQLSTATE 23505), o "" en caso contrario.
func uniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

// mapUniqueViolation traduce violaciones de unicidad a errores de dominio
// según el constraint golpeado. La unicidad se garantiza en la base (cierra
// la carrera entre dos aprovisionamientos concurrentes del mismo email/nombre);
// aquí solo se le pone nombre de dominio.
func mapUniqueViolation(err error) error {
	switch uniqueConstraint(err) {
	case "users_email_key":
		return domain.ErrEmailAlreadyExists
	case "company_profiles_name_key":
		return domain.ErrCompanyNameTaken
	case "company_profiles_user_id_key", "person_profiles_user_id_key":
		return domain.ErrProfileAlreadyExists
	case "products_sku_key":
		return domain.ErrDuplicate
	case "":
		return nil
	default:
		return domain.ErrDuplicate
	}
}
