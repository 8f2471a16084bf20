package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/comercio-pro/internal/application/dto"
	"github.com/tu-usuario/comercio-pro/internal/domain"
	"github.com/tu-usuario/comercio-pro/internal/domain/entity"
	"github.com/tu-usuario/comercio-pro/internal/domain/repository"
	"github.com/tu-usuario/comercio-pro/pkg/config"
	"github.com/tu-usuario/comercio-pro/pkg/jwt"
)

// UseCase maneja autenticación por credenciales y el ciclo de vida de tokens.
type UseCase struct {
	userRepo  repository.UserRepository
	jwtCfg    config.JWTConfig
	dummyHash []byte
}

// NewUseCase construye el caso de uso. bcryptCost 0 usa bcrypt.DefaultCost y
// debe ser el mismo factor con el que se aprovisionan las cuentas: el hash
// dummy contra el que se compara cuando el email no existe se genera con ese
// costo, para que el tiempo de respuesta sea el mismo exista o no la cuenta.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig, bcryptCost int) *UseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("comercio-pro/no-existe"), bcryptCost)
	if err != nil {
		// Solo ocurre con un costo fuera del rango de bcrypt.
		panic("auth: generar hash dummy: " + err.Error())
	}
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, dummyHash: dummyHash}
}

// Authenticate verifica email y password contra la cuenta almacenada.
// Retorna domain.ErrUnauthorized sin distinguir entre cuenta inexistente,
// password incorrecto o cuenta desactivada.
func (uc *UseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	if user == nil {
		// Comparación contra el hash dummy para igualar el costo.
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Login autentica y emite un par de tokens (acceso + refresh).
func (uc *UseCase) Login(ctx context.Context, req dto.TokenRequest) (*dto.TokenResponse, error) {
	user, err := uc.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return uc.issuePair(user)
}

// Refresh valida un token de refresh y emite un par nuevo (rotación).
// El usuario se vuelve a consultar: una cuenta desactivada después de emitido
// el refresh ya no puede renovar.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := jwt.ParseRefresh(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return uc.issuePair(user)
}

func (uc *UseCase) issuePair(user *entity.User) (*dto.TokenResponse, error) {
	access, err := jwt.GenerateAccess(uc.jwtCfg.Secret, user.ID, user.Kind, user.IsAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("generando token de acceso: %w", err)
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpiration)
	if err != nil {
		return nil, fmt.Errorf("generando token de refresh: %w", err)
	}
	return &dto.TokenResponse{Access: access, Refresh: refresh}, nil
}
