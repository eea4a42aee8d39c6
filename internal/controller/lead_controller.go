package controller

import (
	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/internal/pkg/serverutils"
	"ai-attendant-widget/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Set(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type leadController struct {
	service service.ILeadService
}

func NewLeadController(service service.ILeadService) ILeadController {
	return &leadController{service: service}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lead")
	h.Get("", c.Get)
	h.Put("", c.Set)
	h.Delete("", c.Clear)
}

func (c *leadController) Get(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get lead", c.service.Get(ctx.UserContext())))
}

func (c *leadController) Set(ctx *fiber.Ctx) error {
	var req dto.SetLeadRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set lead", c.service.Set(ctx.UserContext(), &req)))
}

func (c *leadController) Clear(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success clear lead", c.service.Clear(ctx.UserContext())))
}
