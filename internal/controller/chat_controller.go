package controller

import (
	"errors"

	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/internal/pkg/serverutils"
	"ai-attendant-widget/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	ToggleSelection(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	ReplaceMessages(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
	MinimizeAll(ctx *fiber.Ctx) error
	Focus(ctx *fiber.Ctx) error
	SetDraft(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	DeleteFromHistory(ctx *fiber.Ctx) error
	SetHistoryOpen(ctx *fiber.Ctx) error
	SetMinimized(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Get("/state", c.State)
	h.Post("/selection", c.ToggleSelection)

	h.Post("/conversations", c.Start)
	h.Post("/conversations/minimize", c.MinimizeAll)
	h.Put("/conversations/:id/messages", c.ReplaceMessages)
	h.Delete("/conversations/:id", c.Close)
	h.Post("/conversations/:id/focus", c.Focus)
	h.Put("/conversations/:id/draft", c.SetDraft)
	h.Post("/conversations/:id/send", c.Send)

	h.Post("/history/:id/restore", c.Restore)
	h.Delete("/history/:id", c.DeleteFromHistory)
	h.Put("/history/open", c.SetHistoryOpen)

	h.Put("/window/minimized", c.SetMinimized)
}

func (c *chatController) State(ctx *fiber.Ctx) error {
	res := c.service.State(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success get widget state", res))
}

func (c *chatController) ToggleSelection(ctx *fiber.Ctx) error {
	var req dto.ToggleSelectionRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}

	res := c.service.ToggleSelection(ctx.UserContext(), req.AIID)
	return ctx.JSON(serverutils.SuccessResponse("Success toggle selection", res))
}

func (c *chatController) Start(ctx *fiber.Ctx) error {
	var req dto.StartConversationRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}

	res := c.service.StartConversation(ctx.UserContext(), req.AIID)
	return ctx.JSON(serverutils.SuccessResponse("Success start conversation", res))
}

func (c *chatController) ReplaceMessages(ctx *fiber.Ctx) error {
	var req dto.ReplaceMessagesRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}

	res := c.service.ReplaceMessages(ctx.UserContext(), ctx.Params("id"), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success update messages", res))
}

func (c *chatController) Close(ctx *fiber.Ctx) error {
	res := c.service.CloseConversation(ctx.UserContext(), ctx.Params("id"))
	return ctx.JSON(serverutils.SuccessResponse("Success close conversation", res))
}

func (c *chatController) MinimizeAll(ctx *fiber.Ctx) error {
	res := c.service.MinimizeAll(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success minimize conversations", res))
}

func (c *chatController) Focus(ctx *fiber.Ctx) error {
	res := c.service.Focus(ctx.UserContext(), ctx.Params("id"))
	return ctx.JSON(serverutils.SuccessResponse("Success focus conversation", res))
}

func (c *chatController) SetDraft(ctx *fiber.Ctx) error {
	var req dto.SetDraftRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}

	res := c.service.SetDraft(ctx.UserContext(), ctx.Params("id"), req.Text)
	return ctx.JSON(serverutils.SuccessResponse("Success set draft", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	res := c.service.SendMessage(ctx.UserContext(), ctx.Params("id"))
	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) Restore(ctx *fiber.Ctx) error {
	res, err := c.service.RestoreConversation(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success restore conversation", res))
}

func (c *chatController) DeleteFromHistory(ctx *fiber.Ctx) error {
	res := c.service.DeleteFromHistory(ctx.UserContext(), ctx.Params("id"))
	return ctx.JSON(serverutils.SuccessResponse("Success delete conversation", res))
}

func (c *chatController) SetHistoryOpen(ctx *fiber.Ctx) error {
	var req dto.SetFlagRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}

	res := c.service.SetHistoryOpen(ctx.UserContext(), *req.Value)
	return ctx.JSON(serverutils.SuccessResponse("Success toggle history", res))
}

func (c *chatController) SetMinimized(ctx *fiber.Ctx) error {
	var req dto.SetFlagRequest
	if err := parseAndValidate(ctx, &req); err != nil {
		return err
	}

	res := c.service.SetMinimized(ctx.UserContext(), *req.Value)
	return ctx.JSON(serverutils.SuccessResponse("Success toggle window", res))
}

func parseAndValidate(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return serverutils.ValidateRequest(req)
}
