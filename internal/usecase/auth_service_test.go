package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (*AuthService, *fakeUsuarioRepo) {
	usuarios := newFakeUsuarioRepo()
	return NewAuthService(usuarios, "test-secret", time.Hour, nopLogger{}), usuarios
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	usuario, err := svc.Register(ctx, RegisterInput{
		Email:     "ana@example.com",
		Password:  "secreta123",
		Nombre:    "Ana",
		Apellido:  "Mamani",
		IsCliente: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, usuario.ID)
	assert.True(t, usuario.IsActive)
	assert.NotEqual(t, "secreta123", usuario.Password, "password must be hashed")

	token, logged, err := svc.Login(ctx, "ana@example.com", "secreta123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, usuario.ID, logged.ID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.True(t, claims.IsCliente)
	assert.False(t, claims.IsAdmin)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "y"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ana@example.com", "incorrecta")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nadie@example.com", "secreta123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	svc, usuarios := newTestAuthService()
	ctx := context.Background()

	usuario, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	usuario.IsActive = false
	require.NoError(t, usuarios.Update(ctx, usuario))

	_, _, err = svc.Login(ctx, "ana@example.com", "secreta123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestValidateToken_Invalido(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_FirmaAjena(t *testing.T) {
	ctx := context.Background()

	otro := NewAuthService(newFakeUsuarioRepo(), "other-secret", time.Hour, nopLogger{})
	_, err := otro.Register(ctx, RegisterInput{Email: "x@example.com", Password: "p"})
	require.NoError(t, err)
	token, _, err := otro.Login(ctx, "x@example.com", "p")
	require.NoError(t, err)

	svc, _ := newTestAuthService()
	_, err = svc.ValidateToken(token)
	assert.Error(t, err, "tokens signed with another secret are rejected")
}

func TestRegisterFcmToken(t *testing.T) {
	svc, usuarios := newTestAuthService()
	ctx := context.Background()

	usuario, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "p"})
	require.NoError(t, err)

	require.NoError(t, svc.RegisterFcmToken(ctx, usuario.ID, "device-token"))
	stored, _ := usuarios.FindByID(ctx, usuario.ID)
	assert.Equal(t, "device-token", stored.FcmToken)
}
