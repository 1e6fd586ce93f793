package handler

import (
	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/pkg/response"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

// RegisterUserRoutes mounts the per-user routes under a /users group.
func (h *UserSkillHandler) RegisterUserRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/skills", h.List)
	r.Post("/:id/skills", h.Create)
	r.Post("/:id/skills/bulk", h.BulkCreate)
}

// RegisterRoutes mounts the per-skill routes under a /skills group.
func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), middleware.SessionFrom(c), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *UserSkillHandler) Create(c fiber.Ctx) error {
	var req usecase.SkillInput
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	created, err := h.uc.Create(c.Context(), middleware.SessionFrom(c), c.Params("id"), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *UserSkillHandler) BulkCreate(c fiber.Ctx) error {
	var req []usecase.SkillInput
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	created, err := h.uc.BulkCreate(c.Context(), middleware.SessionFrom(c), c.Params("id"), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *UserSkillHandler) Update(c fiber.Ctx) error {
	var req usecase.SkillInput
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	updated, err := h.uc.Update(c.Context(), middleware.SessionFrom(c), c.Params("id"), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *UserSkillHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), middleware.SessionFrom(c), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
