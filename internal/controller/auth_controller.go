package controller

import (
	"errors"

	"agroadvisor-be/internal/dto"
	"agroadvisor-be/internal/pkg/serverutils"
	"agroadvisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	ConfirmEmail(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Get("/confirm_email/:token", c.ConfirmEmail)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("User registered successfully. Check your email for the confirmation link.", res))
}

func (c *authController) ConfirmEmail(ctx *fiber.Ctx) error {
	token := ctx.Params("token")

	res, err := c.service.ConfirmEmail(ctx.Context(), token)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Email confirmed successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		status := fiber.StatusUnauthorized
		if errors.Is(err, service.ErrEmailNotVerified) {
			status = fiber.StatusForbidden
		}
		return ctx.Status(status).JSON(serverutils.ErrorResponse(status, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

// Logout exists for client symmetry. Access tokens are stateless, so the
// client discards its token and the server has nothing to revoke.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}
