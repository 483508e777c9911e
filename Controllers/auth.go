package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"Momentum/Gateway"
	"Momentum/Store"
	"Momentum/middleware"
)

// AuthController bridges the local surface to the backend session. On a
// successful backend login it issues the local session cookie that
// middleware.Verify checks.
type AuthController struct {
	Store *Store.Store
}

// NewAuthController creates a new AuthController
func NewAuthController(store *Store.Store) *AuthController {
	return &AuthController{Store: store}
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// Login signs in against the backend and sets the local session cookie.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input LoginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	user, err := c.Store.Auth.Login(ctx.UserContext(), input.Email, input.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Login failed"})
	}

	token, err := middleware.IssueSession(user.RemoteID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not create session"})
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(middleware.SessionDuration),
		HTTPOnly: true,
	})
	return ctx.JSON(user)
}

// Register creates an account, signs in and sets the session cookie.
func (c *AuthController) Register(ctx *fiber.Ctx) error {
	var input RegisterInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	reg := Gateway.Registration{Email: input.Email, Password: input.Password, Name: input.Name}
	user, err := c.Store.Auth.Register(ctx.UserContext(), reg)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "Registration failed"})
	}

	token, err := middleware.IssueSession(user.RemoteID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not create session"})
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(middleware.SessionDuration),
		HTTPOnly: true,
	})
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// Logout clears the backend session and expires the local cookie.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	c.Store.Auth.Logout(ctx.UserContext())

	ctx.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return ctx.JSON(fiber.Map{"message": "Logged out"})
}

// User returns the signed-in user.
func (c *AuthController) User(ctx *fiber.Ctx) error {
	user := c.Store.Auth.User()
	if user == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}
	return ctx.JSON(user)
}
