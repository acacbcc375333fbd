package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/MH-Sifat/Machine-House-Server/models"
	"github.com/MH-Sifat/Machine-House-Server/responses"
	"github.com/MH-Sifat/Machine-House-Server/store"
)

type UserController struct {
	store     store.UserStore
	jwtSecret []byte
}

func NewUserController(s store.UserStore, jwtSecret string) *UserController {
	return &UserController{store: s, jwtSecret: []byte(jwtSecret)}
}

// CreateUser registers a user on first login/signup. Role fields are never
// accepted from the request body; elevation goes through the dedicated
// endpoints.
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if reqBody.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email is required",
		})
	}

	user := models.User{
		Name:  reqBody.Name,
		Email: reqBody.Email,
	}

	if reqBody.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error hashing password",
			})
		}
		user.Password = string(hashedPassword)
	}

	insertedID, err := uc.store.CreateUser(ctx, user)
	if errors.Is(err, store.ErrDuplicate) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "User with same email already exists",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving user, please try again later",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User created successfully",
		Result:  &fiber.Map{"insertedId": insertedID},
	})
}

// SignIn verifies the password and issues the bearer token the auth
// middleware checks.
func (uc *UserController) SignIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	user, err := uc.store.FindUserByEmail(ctx, reqBody.Email)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user",
		})
	}

	if user.Password == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqBody.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	claims := jwt.MapClaims{
		"email": user.Email,
		"exp":   time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error creating access token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Signed in successfully",
		Result:  &fiber.Map{"accessToken": accessToken},
	})
}

func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	users, err := uc.store.ListUsers(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching users",
		})
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// CheckAdmin reports whether the user's role field equals "admin". A missing
// user is simply not an admin.
func (uc *UserController) CheckAdmin(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email := c.Params("email")
	user, err := uc.store.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isAdmin": user.IsAdmin()})
}

// CheckSeller reports whether the user's userRole field equals "seller",
// independent of the admin role.
func (uc *UserController) CheckSeller(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email := c.Params("email")
	user, err := uc.store.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isSeller": user.IsSeller()})
}

func (uc *UserController) MakeAdmin(c *fiber.Ctx) error {
	return uc.roleUpdate(c, "Admin granted", func(ctx context.Context, id string) error {
		return uc.store.GrantAdmin(ctx, id)
	})
}

// RevokeAdmin clears the role field only; the account stays.
func (uc *UserController) RevokeAdmin(c *fiber.Ctx) error {
	return uc.roleUpdate(c, "Admin revoked", func(ctx context.Context, id string) error {
		return uc.store.RevokeAdmin(ctx, id)
	})
}

func (uc *UserController) MakeSeller(c *fiber.Ctx) error {
	return uc.roleUpdate(c, "Seller granted", func(ctx context.Context, id string) error {
		return uc.store.GrantSeller(ctx, id)
	})
}

func (uc *UserController) RevokeSeller(c *fiber.Ctx) error {
	return uc.roleUpdate(c, "Seller revoked", func(ctx context.Context, id string) error {
		return uc.store.RevokeSeller(ctx, id)
	})
}

// DeleteUser removes the account entirely, distinct from the role demotions.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	return uc.roleUpdate(c, "User deleted", func(ctx context.Context, id string) error {
		return uc.store.DeleteUser(ctx, id)
	})
}

func (uc *UserController) roleUpdate(c *fiber.Ctx, message string, op func(context.Context, string) error) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id := c.Params("id")
	err := op(ctx, id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Result:  &fiber.Map{"modifiedCount": 1},
	})
}
