package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/comercio-pro/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "comercio-pro-test"
)

func TestGenerateAndParseAccess(t *testing.T) {
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, "company", false, testIssuer, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.ParseAccess(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.Subject)
	assert.Equal(t, "company", claims.Kind)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, pkgjwt.TypeAccess, claims.TokenType)
}

func TestGenerateRefresh_JTIUnico(t *testing.T) {
	tok1, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testIssuer, 60)
	require.NoError(t, err)
	tok2, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testIssuer, 60)
	require.NoError(t, err)

	c1, err := pkgjwt.ParseRefresh(testSecret, tok1)
	require.NoError(t, err)
	c2, err := pkgjwt.ParseRefresh(testSecret, tok2)
	require.NoError(t, err)

	assert.NotEmpty(t, c1.ID)
	assert.NotEqual(t, c1.ID, c2.ID, "cada refresh debe llevar un jti nuevo")
}

// Un refresh no sirve como token de acceso, ni al revés.
func TestTipoDeTokenCruzado_RetornaError(t *testing.T) {
	refresh, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testIssuer, 60)
	require.NoError(t, err)
	_, err = pkgjwt.ParseAccess(testSecret, refresh)
	assert.Error(t, err, "refresh no debe validar como acceso")

	access, err := pkgjwt.GenerateAccess(testSecret, testUserID, "person", false, testIssuer, 15)
	require.NoError(t, err)
	_, err = pkgjwt.ParseRefresh(testSecret, access)
	assert.Error(t, err, "acceso no debe validar como refresh")
}

func TestTokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, "company", false, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.ParseAccess(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestSecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, "company", true, testIssuer, 15)
	require.NoError(t, err)

	_, err = pkgjwt.ParseAccess("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestSecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.GenerateAccess("", testUserID, "company", false, testIssuer, 15)
	assert.Error(t, err)
}
