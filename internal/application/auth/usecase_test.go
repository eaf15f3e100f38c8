package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizhub-core/internal/application/auth"
	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/infrastructure/memory"
	"github.com/jhoicas/bizhub-core/pkg/logger"
)

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "bizhub-test",
}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	require.NoError(t, store.EnsureAdminUser("admin", auth.HashPassword("admin123")))
	return auth.NewAuthUseCase(store, testJWT, logger.Nop()), store
}

func TestHashPassword_DeterministaYHex(t *testing.T) {
	h1 := auth.HashPassword("admin123")
	h2 := auth.HashPassword("admin123")
	assert.Equal(t, h1, h2, "el digest debe ser determinista")
	assert.Len(t, h1, 64, "SHA-256 en hex son 64 caracteres")
	assert.NotEqual(t, h1, auth.HashPassword("otra"), "passwords distintos, digests distintos")
}

func TestAuthenticate_CredencialCorrecta(t *testing.T) {
	uc, store := newAuth(t)

	ok, err := uc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := store.ListActivity("admin")
	require.NoError(t, err)
	require.NotEmpty(t, entries, "el login exitoso debe dejar rastro de auditoría")
	assert.Equal(t, "login", entries[0].Action)
}

func TestAuthenticate_PasswordIncorrecto(t *testing.T) {
	uc, store := newAuth(t)

	ok, err := uc.Authenticate("admin", "equivocado")
	require.NoError(t, err)
	assert.False(t, ok)

	entries, err := store.ListActivity("admin")
	require.NoError(t, err)
	assert.Empty(t, entries, "un login fallido no registra actividad")
}

func TestAuthenticate_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuth(t)
	ok, err := uc.Authenticate("fantasma", "loquesea")
	require.NoError(t, err)
	assert.False(t, ok, "usuario inexistente se rechaza sin error")
}

func TestAuthenticate_CamposVacios(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Authenticate("", "x")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Authenticate("admin", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRole_AdminSembrado(t *testing.T) {
	uc, _ := newAuth(t)
	assert.Equal(t, entity.RoleAdmin, uc.Role("admin"))
	assert.True(t, uc.IsAdmin("admin"))
	assert.Equal(t, entity.RoleUser, uc.Role("desconocido"), "rol por defecto user")
}

func TestIssueToken_Y_ParseToken(t *testing.T) {
	uc, _ := newAuth(t)

	tok, err := uc.IssueToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, role, err := uc.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestParseToken_Invalido(t *testing.T) {
	uc, _ := newAuth(t)
	_, _, err := uc.ParseToken("no-es-un-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
