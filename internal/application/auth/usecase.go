// Package auth implementa la puerta de acceso por PIN: un PIN de bodega y un
// PIN de administración, configurados como hashes bcrypt. El login emite un
// JWT con el rol correspondiente.
package auth

import (
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	pkgjwt "github.com/tu-usuario/warehouse-mro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Roles emitidos en el claim del token.
const (
	RoleWarehouse = "warehouse" // operaciones de bodega: stock, movimientos, dashboard
	RoleAdmin     = "admin"     // además: gestión de empleados, máquinas y catálogo
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase valida PINs y emite tokens.
type AuthUseCase struct {
	warehousePINHash string // hash bcrypt del PIN de bodega
	adminPINHash     string // hash bcrypt del PIN de administración
	jwtCfg           JWTConfig
}

// NewAuthUseCase construye el caso de uso con los hashes bcrypt de los PINs.
func NewAuthUseCase(warehousePINHash, adminPINHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		warehousePINHash: warehousePINHash,
		adminPINHash:     adminPINHash,
		jwtCfg:           jwtCfg,
	}
}

// Login compara el PIN contra ambos hashes (admin primero) y devuelve el token
// y el rol. PIN desconocido falla con ErrUnauthorized.
func (uc *AuthUseCase) Login(pin string) (token, role string, err error) {
	if pin == "" {
		return "", "", domain.ErrUnauthorized
	}
	switch {
	case uc.adminPINHash != "" && bcrypt.CompareHashAndPassword([]byte(uc.adminPINHash), []byte(pin)) == nil:
		role = RoleAdmin
	case uc.warehousePINHash != "" && bcrypt.CompareHashAndPassword([]byte(uc.warehousePINHash), []byte(pin)) == nil:
		role = RoleWarehouse
	default:
		return "", "", domain.ErrUnauthorized
	}
	token, err = pkgjwt.Generate(uc.jwtCfg.Secret, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", "", err
	}
	return token, role, nil
}
