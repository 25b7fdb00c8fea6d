package controller

import (
	"ai-writerbot-be/internal/dto"
	"ai-writerbot-be/internal/pkg/serverutils"
	"ai-writerbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDialogController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Stop(ctx *fiber.Ctx) error
}

type dialogController struct {
	dialogService service.IDialogService
}

func NewDialogController(dialogService service.IDialogService) IDialogController {
	return &dialogController{
		dialogService: dialogService,
	}
}

func (c *dialogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dialog/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("start", c.Start)
	h.Post("message", c.SendMessage)
	h.Post("stop", c.Stop)
}

func (c *dialogController) Start(ctx *fiber.Ctx) error {
	// 1. Ambil User ID dari Token
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.StartDialogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.dialogService.Start(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start dialog", res))
}

func (c *dialogController) SendMessage(ctx *fiber.Ctx) error {
	// 1. Ambil User ID dari Token
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.dialogService.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process message", res))
}

func (c *dialogController) Stop(ctx *fiber.Ctx) error {
	// 1. Ambil User ID dari Token
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.dialogService.Stop(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success stop dialog", res))
}
