package controller

import (
	"strings"

	"ai-writerbot-be/internal/pkg/serverutils"
	"ai-writerbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthorController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetBio(ctx *fiber.Ctx) error
	GetWorks(ctx *fiber.Ctx) error
	RandomPoem(ctx *fiber.Ctx) error
}

type authorController struct {
	authorService service.IAuthorService
}

func NewAuthorController(authorService service.IAuthorService) IAuthorController {
	return &authorController{
		authorService: authorService,
	}
}

func (c *authorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/author/v1")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Get(":id/bio", c.GetBio)
	h.Get(":id/works", c.GetWorks)
	h.Get(":id/poems/random", c.RandomPoem)
}

func (c *authorController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.authorService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list authors", res))
}

func (c *authorController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid author id")
	}

	res, err := c.authorService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show author", res))
}

func (c *authorController) GetBio(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid author id")
	}

	res, err := c.authorService.GetBio(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show author bio", res))
}

func (c *authorController) GetWorks(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid author id")
	}

	res, err := c.authorService.GetWorks(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show author works", res))
}

func (c *authorController) RandomPoem(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid author id")
	}

	// Optional comma-separated titles the client has already seen.
	var exclude map[string]bool
	if raw := ctx.Query("exclude"); raw != "" {
		exclude = make(map[string]bool)
		for _, title := range strings.Split(raw, ",") {
			if title = strings.TrimSpace(title); title != "" {
				exclude[title] = true
			}
		}
	}

	res, err := c.authorService.RandomPoem(ctx.Context(), id, exclude)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success pick random poem", res))
}
