package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/comercio-pro/internal/application/dto"
	"github.com/tu-usuario/comercio-pro/internal/domain"
	"github.com/tu-usuario/comercio-pro/internal/domain/entity"
	"github.com/tu-usuario/comercio-pro/pkg/config"
	"github.com/tu-usuario/comercio-pro/pkg/jwt"
)

// stubUserRepo implementa repository.UserRepository sobre un mapa en memoria.
type stubUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	r := &stubUserRepo{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
	for _, u := range users {
		r.byEmail[u.Email] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(u *entity.User) error { r.byEmail[u.Email] = u; r.byID[u.ID] = u; return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error)       { return r.byID[id], nil }
func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }
func (r *stubUserRepo) Update(u *entity.User) error                   { return nil }
func (r *stubUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Deactivate(id string) error { return nil }

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secreto-de-prueba",
		Expiration:        15,
		RefreshExpiration: 60,
		Issuer:            "comercio-pro-test",
	}
}

func testUser(t *testing.T, email, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "u-" + email,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Usuario de Prueba",
		Kind:         domain.KindPerson,
		IsActive:     active,
	}
}

func TestAuthenticate_CredencialesValidas(t *testing.T) {
	user := testUser(t, "ana@acme.co", "clave123", true)
	uc := NewUseCase(newStubUserRepo(user), testJWTConfig(), bcrypt.MinCost)

	got, err := uc.Authenticate(context.Background(), "ana@acme.co", "clave123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticate_NormalizaEmail(t *testing.T) {
	user := testUser(t, "ana@acme.co", "clave123", true)
	uc := NewUseCase(newStubUserRepo(user), testJWTConfig(), bcrypt.MinCost)

	// El email llega con mayúsculas y espacios, la cuenta se guardó normalizada.
	got, err := uc.Authenticate(context.Background(), "  ANA@Acme.CO ", "clave123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticate_PasswordIncorrecto(t *testing.T) {
	user := testUser(t, "ana@acme.co", "clave123", true)
	uc := NewUseCase(newStubUserRepo(user), testJWTConfig(), bcrypt.MinCost)

	got, err := uc.Authenticate(context.Background(), "ana@acme.co", "otra-clave")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, got)
}

// El hash dummy debe generarse con el mismo factor de costo que los hashes de
// las cuentas reales: si difieren, el tiempo de respuesta delata si el email
// existe.
func TestNewUseCase_HashDummyUsaElCostoConfigurado(t *testing.T) {
	uc := NewUseCase(newStubUserRepo(), testJWTConfig(), bcrypt.MinCost+1)

	cost, err := bcrypt.Cost(uc.dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestNewUseCase_CostoCeroUsaElDefault(t *testing.T) {
	uc := NewUseCase(newStubUserRepo(), testJWTConfig(), 0)

	cost, err := bcrypt.Cost(uc.dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestAuthenticate_CuentaInexistente(t *testing.T) {
	uc := NewUseCase(newStubUserRepo(), testJWTConfig(), bcrypt.MinCost)

	got, err := uc.Authenticate(context.Background(), "nadie@acme.co", "clave123")
	// Mismo error que con password incorrecto: no se filtra si la cuenta existe.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, got)
}

func TestAuthenticate_CuentaDesactivada(t *testing.T) {
	user := testUser(t, "baja@acme.co", "clave123", false)
	uc := NewUseCase(newStubUserRepo(user), testJWTConfig(), bcrypt.MinCost)

	got, err := uc.Authenticate(context.Background(), "baja@acme.co", "clave123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, got)
}

func TestLogin_EmiteParDeTokens(t *testing.T) {
	user := testUser(t, "ana@acme.co", "clave123", true)
	cfg := testJWTConfig()
	uc := NewUseCase(newStubUserRepo(user), cfg, bcrypt.MinCost)

	pair, err := uc.Login(context.Background(), dto.TokenRequest{Email: "ana@acme.co", Password: "clave123"})
	require.NoError(t, err)

	access, err := jwt.ParseAccess(cfg.Secret, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, access.Subject)
	assert.Equal(t, domain.KindPerson, access.Kind)

	refresh, err := jwt.ParseRefresh(cfg.Secret, pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refresh.Subject)
}

func TestRefresh_RotaElPar(t *testing.T) {
	user := testUser(t, "ana@acme.co", "clave123", true)
	cfg := testJWTConfig()
	uc := NewUseCase(newStubUserRepo(user), cfg, bcrypt.MinCost)

	first, err := uc.Login(context.Background(), dto.TokenRequest{Email: "ana@acme.co", Password: "clave123"})
	require.NoError(t, err)

	second, err := uc.Refresh(context.Background(), first.Refresh)
	require.NoError(t, err)

	// El refresh nuevo tiene jti propio: el par rotado es distinguible del original.
	c1, err := jwt.ParseRefresh(cfg.Secret, first.Refresh)
	require.NoError(t, err)
	c2, err := jwt.ParseRefresh(cfg.Secret, second.Refresh)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestRefresh_RechazaTokenDeAcceso(t *testing.T) {
	user := testUser(t, "ana@acme.co", "clave123", true)
	cfg := testJWTConfig()
	uc := NewUseCase(newStubUserRepo(user), cfg, bcrypt.MinCost)

	pair, err := uc.Login(context.Background(), dto.TokenRequest{Email: "ana@acme.co", Password: "clave123"})
	require.NoError(t, err)

	got, err := uc.Refresh(context.Background(), pair.Access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, got)
}

func TestRefresh_CuentaDesactivadaDespuesDeEmitir(t *testing.T) {
	user := testUser(t, "ana@acme.co", "clave123", true)
	cfg := testJWTConfig()
	repo := newStubUserRepo(user)
	uc := NewUseCase(repo, cfg, bcrypt.MinCost)

	pair, err := uc.Login(context.Background(), dto.TokenRequest{Email: "ana@acme.co", Password: "clave123"})
	require.NoError(t, err)

	user.IsActive = false

	got, err := uc.Refresh(context.Background(), pair.Refresh)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, got)
}

func TestRefresh_TokenManipulado(t *testing.T) {
	uc := NewUseCase(newStubUserRepo(), testJWTConfig(), bcrypt.MinCost)

	got, err := uc.Refresh(context.Background(), "no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, got)
}
