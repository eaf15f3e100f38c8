// Package auth implementa la autenticación del back-office: verificación de
// credenciales, consulta de rol y emisión de tokens de sesión para el modo API.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/jhoicas/bizhub-core/internal/domain"
	"github.com/jhoicas/bizhub-core/internal/domain/entity"
	"github.com/jhoicas/bizhub-core/internal/domain/storage"
	"github.com/jhoicas/bizhub-core/pkg/logger"
	"github.com/jhoicas/bizhub-core/pkg/token"
)

// JWTConfig configuración para la generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y autorización.
type AuthUseCase struct {
	store  storage.Adapter
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store storage.Adapter, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{store: store, jwtCfg: jwtCfg, log: log}
}

// HashPassword devuelve el digest SHA-256 en hex del password. El digest es
// determinista y sin sal: la verificación se delega al almacenamiento
// comparando digests. El endurecimiento de credenciales está fuera de alcance.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Authenticate verifica username + password. Nunca compara texto plano.
// Un login exitoso actualiza last_login y deja rastro en el log de actividad.
func (uc *AuthUseCase) Authenticate(username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, fmt.Errorf("%w: usuario y contraseña son obligatorios", domain.ErrValidation)
	}
	ok, err := uc.store.AuthenticateUser(username, HashPassword(password))
	if err != nil {
		return false, err
	}
	if !ok {
		uc.log.Warn().Str("username", username).Msg("autenticación rechazada")
		return false, nil
	}
	if err := uc.store.UpdateLastLogin(username); err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("no se pudo actualizar last_login")
	}
	if err := uc.store.LogActivity(username, "login", ""); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar actividad de login")
	}
	return true, nil
}

// Role devuelve el rol del usuario ("user" si no se encuentra).
func (uc *AuthUseCase) Role(username string) string {
	role, err := uc.store.GetUserRole(username)
	if err != nil {
		return entity.RoleUser
	}
	return role
}

// IsAdmin indica si el usuario tiene rol admin.
func (uc *AuthUseCase) IsAdmin(username string) bool {
	return uc.Role(username) == entity.RoleAdmin
}

// UpdateLastLogin registra el inicio de sesión del usuario.
func (uc *AuthUseCase) UpdateLastLogin(username string) error {
	return uc.store.UpdateLastLogin(username)
}

// IssueToken emite un token de sesión firmado para un usuario ya autenticado.
func (uc *AuthUseCase) IssueToken(username string) (string, error) {
	return token.Generate(uc.jwtCfg.Secret, username, uc.Role(username), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// ParseToken valida un token de sesión y devuelve username y role.
func (uc *AuthUseCase) ParseToken(t string) (username, role string, err error) {
	username, role, err = token.Parse(uc.jwtCfg.Secret, t)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return username, role, nil
}
