package controller

import (
	"strings"

	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/internal/pkg/serverutils"
	"ai-attendant-widget/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	CreateCustom(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("", c.GetAll)
	h.Post("/custom", c.CreateCustom)
}

func (c *catalogController) GetAll(ctx *fiber.Ctx) error {
	res := dto.CatalogResponse{
		Status: string(c.service.Status()),
		Models: c.service.Models(),
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get catalog", res))
}

func (c *catalogController) CreateCustom(ctx *fiber.Ctx) error {
	var req dto.CreateCustomAIRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// blank niche is a quiet no-op, not a validation failure
	if strings.TrimSpace(req.Niche) == "" {
		return ctx.JSON(serverutils.SuccessResponse("Niche is empty", dto.CreateCustomAIResponse{Accepted: false}))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	model, created, err := c.service.CreateCustomAI(ctx.UserContext(), req.Niche)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create custom attendant", dto.CreateCustomAIResponse{Accepted: created, Model: &model}))
}
