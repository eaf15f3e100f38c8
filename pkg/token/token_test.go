package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizhub-core/pkg/token"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := token.Generate(testSecret, "admin", "admin", "bizhub-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, role, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "admin", role)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := token.Generate("", "admin", "admin", "bizhub-test", 60)
	assert.Error(t, err)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := token.Generate(testSecret, "admin", "admin", "bizhub-test", -1)
	require.NoError(t, err)

	_, _, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "un token vencido debe rechazarse")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := token.Generate(testSecret, "admin", "admin", "bizhub-test", 60)
	require.NoError(t, err)

	_, _, err = token.Parse("otro-secret", tok)
	assert.Error(t, err, "firma con otro secret debe rechazarse")
}
