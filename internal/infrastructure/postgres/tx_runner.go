package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/comercio-pro/internal/application/provisioning"
	"github.com/tu-usuario/comercio-pro/internal/application/usecase"
	"github.com/tu-usuario/comercio-pro/internal/domain/repository"
)

// Ensure TxRunner implements provisioning.TxRunner and usecase.OrderTxRunner.
var _ provisioning.TxRunner = (*TxRunner)(nil)
var _ usecase.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProvision inicia una transacción, ejecuta fn con repos de usuario y
// perfiles atados a la tx y hace Commit o Rollback. Es el límite transaccional
// del aprovisionamiento: si fn retorna error, ni el usuario ni el perfil
// quedan persistidos.
func (r *TxRunner) RunProvision(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyProfileRepository,
	personRepo repository.PersonProfileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	companyRepo := NewCompanyProfileRepository(tx)
	personRepo := NewPersonProfileRepository(tx)

	if err := fn(userRepo, companyRepo, personRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder inicia una transacción con repos de órdenes y productos (cabecera
// y líneas de una orden se persisten juntas o no se persisten).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
