package controller

import (
	"errors"

	"agroadvisor-be/internal/dto"
	"agroadvisor-be/internal/pkg/serverutils"
	"agroadvisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	ChatHistory(ctx *fiber.Ctx) error
	NewChat(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", serverutils.JwtMiddleware, c.Chat)
	r.Get("/chat_history/:session_id", serverutils.JwtMiddleware, c.ChatHistory)
	r.Post("/new_chat", serverutils.JwtMiddleware, c.NewChat)
	r.Get("/sessions", serverutils.JwtMiddleware, c.ListSessions)
}

// Chat responds with the web client's flat shape rather than the standard
// envelope: {response, audio_url} on success, {error} on validation failure.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res, err := c.service.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No message provided"})
		case errors.Is(err, service.ErrUnsupportedLanguage):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported language"})
		case errors.Is(err, service.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Chat session not found or does not belong to user"})
		default:
			return err
		}
	}

	return ctx.JSON(res)
}

func (c *chatController) ChatHistory(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	sessionId, err := uuid.Parse(ctx.Params("session_id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"error": "Chat session not found or does not belong to user"})
	}

	res, err := c.service.GetChatHistory(ctx.Context(), userId, sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Chat session not found or does not belong to user"})
		}
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) NewChat(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.NewChat(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing user identity")
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user identity")
	}
	return userId, nil
}
