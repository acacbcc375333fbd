package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/MH-Sifat/Machine-House-Server/responses"
	"github.com/MH-Sifat/Machine-House-Server/store"
)

// Auth validates bearer tokens and, for admin routes, checks the caller's
// role in the store before the handler runs.
type Auth struct {
	secret []byte
	users  store.UserStore
}

func NewAuth(secret string, users store.UserStore) *Auth {
	return &Auth{secret: []byte(secret), users: users}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: message,
	})
}

// RequireAuth extracts and verifies the bearer token, then saves the caller's
// email to Locals for the handlers.
func (a *Auth) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthorized(c, "No auth token, access denied")
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
		return unauthorized(c, "Invalid authorization header format")
	}

	claims := &jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return unauthorized(c, "Token verification failed, access denied")
	}

	email, ok := (*claims)["email"].(string)
	if !ok || email == "" {
		return unauthorized(c, "Email not found in token")
	}

	c.Locals("email", email)
	return c.Next()
}

// RequireAdmin re-reads the caller's user document on every check; there is
// no cached role claim.
func (a *Auth) RequireAdmin(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return unauthorized(c, "Email not found in token")
	}

	user, err := a.users.FindUserByEmail(c.Context(), email)
	if err != nil || !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Admin access required",
		})
	}

	return c.Next()
}
