package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/internal/usecase"
	"github.com/copipaste/agencia-SGE/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (l nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return l
}

type memUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func (r *memUsuarioRepo) Save(ctx context.Context, u *entity.Usuario) error {
	if u.ID == "" {
		u.ID = "u1"
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *memUsuarioRepo) FindByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.usuarios[id], nil
}

func (r *memUsuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUsuarioRepo) FindAll(ctx context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (r *memUsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error    { return nil }
func (r *memUsuarioRepo) UpdateFcmToken(ctx context.Context, id, token string) error {
	return nil
}
func (r *memUsuarioRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestAuth(t *testing.T, isAdmin bool) (*usecase.AuthService, string) {
	t.Helper()

	repo := &memUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
	auth := usecase.NewAuthService(repo, "test-secret", time.Hour, nopLogger{})

	_, err := auth.Register(context.Background(), usecase.RegisterInput{
		Email:    "staff@example.com",
		Password: "clave123",
		IsAdmin:  isAdmin,
	})
	require.NoError(t, err)

	token, _, err := auth.Login(context.Background(), "staff@example.com", "clave123")
	require.NoError(t, err)
	return auth, token
}

func protectedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	auth, _ := newTestAuth(t, false)
	handler := authMiddleware(auth)(protectedHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsBadToken(t *testing.T) {
	auth, _ := newTestAuth(t, false)
	handler := authMiddleware(auth)(protectedHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	auth, token := newTestAuth(t, false)
	handler := authMiddleware(auth)(protectedHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	auth, token := newTestAuth(t, false)
	handler := authMiddleware(auth)(requireAdmin(protectedHandler()))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code, "non-admin is rejected")

	adminAuth, adminToken := newTestAuth(t, true)
	handler = authMiddleware(adminAuth)(requireAdmin(protectedHandler()))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
