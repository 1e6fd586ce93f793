package handler

import (
	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/domain/contact"
	"kaamwala/internal/pkg/response"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/subjects", h.Subjects)
	r.Get("/messages", h.Messages)
	r.Post("/", h.Submit)
}

func (h *ContactHandler) Subjects(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Subjects())
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req contact.Message
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	req.ID = ""
	req.CreatedAt = ""

	msg, err := h.uc.Submit(c.Context(), middleware.SessionFrom(c), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, msg, nil)
}

func (h *ContactHandler) Messages(c fiber.Ctx) error {
	items, err := h.uc.Messages(c.Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
