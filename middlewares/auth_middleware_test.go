package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MH-Sifat/Machine-House-Server/models"
	"github.com/MH-Sifat/Machine-House-Server/store"
)

type stubUserStore struct {
	users map[string]models.User
}

func (s *stubUserStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (s *stubUserStore) CreateUser(ctx context.Context, user models.User) (string, error) {
	return "", nil
}
func (s *stubUserStore) ListUsers(ctx context.Context) ([]models.User, error) { return nil, nil }
func (s *stubUserStore) GrantAdmin(ctx context.Context, id string) error      { return nil }
func (s *stubUserStore) RevokeAdmin(ctx context.Context, id string) error     { return nil }
func (s *stubUserStore) GrantSeller(ctx context.Context, id string) error     { return nil }
func (s *stubUserStore) RevokeSeller(ctx context.Context, id string) error    { return nil }
func (s *stubUserStore) DeleteUser(ctx context.Context, id string) error      { return nil }

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newAuthApp(users map[string]models.User) *fiber.App {
	auth := NewAuth(testSecret, &stubUserStore{users: users})
	app := fiber.New()
	app.Get("/me", auth.RequireAuth, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals("email")})
	})
	app.Get("/admin-only", auth.RequireAuth, auth.RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := newAuthApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	app := newAuthApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthBadSignature(t *testing.T) {
	app := newAuthApp(nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "x@example.com"})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthSetsEmail(t *testing.T) {
	app := newAuthApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "buyer@example.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	users := map[string]models.User{
		"admin@example.com": {Email: "admin@example.com", Role: models.RoleAdmin},
		"buyer@example.com": {Email: "buyer@example.com"},
	}
	app := newAuthApp(users)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin@example.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "buyer@example.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "ghost@example.com"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
