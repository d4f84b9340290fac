package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/warehouse-mro/internal/application/auth"
	"github.com/tu-usuario/warehouse-mro/internal/domain"
	pkgjwt "github.com/tu-usuario/warehouse-mro/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func hashPIN(t *testing.T, pin string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	return auth.NewAuthUseCase(
		hashPIN(t, "1234"),
		hashPIN(t, "9999"),
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "warehouse-mro-test"},
	)
}

func TestLogin_PINBodega(t *testing.T) {
	uc := newAuthUC(t)

	token, role, err := uc.Login("1234")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleWarehouse, role)

	parsed, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleWarehouse, parsed, "el token lleva el rol en el claim")
}

func TestLogin_PINAdmin(t *testing.T) {
	uc := newAuthUC(t)

	_, role, err := uc.Login("9999")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestLogin_PINIncorrecto(t *testing.T) {
	uc := newAuthUC(t)

	_, _, err := uc.Login("0000")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PINVacio(t *testing.T) {
	uc := newAuthUC(t)

	_, _, err := uc.Login("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinHashConfigurado(t *testing.T) {
	// Sin hash de admin: ese PIN no habilita nada.
	uc := auth.NewAuthUseCase(hashPIN(t, "1234"), "",
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "warehouse-mro-test"})

	_, role, err := uc.Login("1234")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleWarehouse, role)

	_, _, err = uc.Login("9999")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
