package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViggenKorir/smartistics-api/pkg/jwt"
)

const secret = "unit-test-secret"

func TestGenerateYParse(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "Founder", "smartistics", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "Founder", role)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "Founder", "smartistics", 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "Founder", "smartistics", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	tok, err := jwt.Generate(secret, "user-1", "Founder", "smartistics", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, _, err := jwt.Parse(secret, "no.es.jwt")
	assert.Error(t, err)
}
