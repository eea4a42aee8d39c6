package controller

import (
	"errors"

	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/internal/pkg/serverutils"
	"ai-attendant-widget/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPhoneController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	SelectAI(ctx *fiber.Ctx) error
	SetPhone(ctx *fiber.Ctx) error
	Execute(ctx *fiber.Ctx) error
}

type phoneController struct {
	service service.IPhoneService
}

func NewPhoneController(service service.IPhoneService) IPhoneController {
	return &phoneController{service: service}
}

func (c *phoneController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/phone")
	h.Get("/state", c.State)
	h.Put("/ai", c.SelectAI)
	h.Put("/number", c.SetPhone)
	h.Post("/execute", c.Execute)
}

func (c *phoneController) State(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get phone state", c.service.State(ctx.UserContext())))
}

func (c *phoneController) SelectAI(ctx *fiber.Ctx) error {
	var req dto.SelectPhoneAIRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SelectAI(ctx.UserContext(), req.AIID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownAI) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select attendant", res))
}

func (c *phoneController) SetPhone(ctx *fiber.Ctx) error {
	var req dto.SetPhoneRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, accepted := c.service.SetPhone(ctx.UserContext(), req.Phone)
	message := "Success set phone"
	if !accepted {
		message = "Phone form is locked"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *phoneController) Execute(ctx *fiber.Ctx) error {
	res := c.service.Execute(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success execute attendant", res))
}
