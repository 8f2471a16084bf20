package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token. El claim "typ" impide que un refresh se use como acceso y viceversa.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Kind e IsAdmin viajan en el token de acceso para que el middleware autorice
// sin consultar la DB; el refresh solo lleva el subject y un jti para rotación.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
	Kind      string `json:"kind,omitempty"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
}

// GenerateAccess genera el token de acceso firmado (HS256, vida corta).
func GenerateAccess(secret, userID, kind string, isAdmin bool, issuer string, expMinutes int) (string, error) {
	return generate(secret, Claims{
		RegisteredClaims: registered(userID, issuer, expMinutes),
		TokenType:        TypeAccess,
		Kind:             kind,
		IsAdmin:          isAdmin,
	})
}

// GenerateRefresh genera el token de refresh firmado (HS256, vida larga).
// Cada refresh lleva un jti nuevo: al rotar, el par emitido es distinguible del anterior.
func GenerateRefresh(secret, userID, issuer string, expMinutes int) (string, error) {
	claims := Claims{
		RegisteredClaims: registered(userID, issuer, expMinutes),
		TokenType:        TypeRefresh,
	}
	claims.ID = uuid.New().String()
	return generate(secret, claims)
}

func registered(userID, issuer string, expMinutes int) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
}

func generate(secret string, claims Claims) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccess valida un token de acceso y devuelve sus claims.
// Retorna error si el token es inválido, expirado, con firma incorrecta o no es de acceso.
func ParseAccess(secret, tokenString string) (*Claims, error) {
	return parse(secret, tokenString, TypeAccess)
}

// ParseRefresh valida un token de refresh y devuelve sus claims.
func ParseRefresh(secret, tokenString string) (*Claims, error) {
	return parse(secret, tokenString, TypeRefresh)
}

func parse(secret, tokenString, wantType string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("tipo de token inesperado: %q", claims.TokenType)
	}
	return claims, nil
}
