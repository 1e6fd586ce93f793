package handler

import (
	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/pkg/response"
	"kaamwala/internal/search"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UsersUsecase
}

func NewUserHandler(uc usecase.UsersUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/email/:email", h.ByEmail)
	r.Delete("/:id", h.Delete)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return badRequest(err)
	}
	size, err := parseQueryIntStrict(c, "size", search.PageSize)
	if err != nil {
		return badRequest(err)
	}

	items, err := h.uc.List(c.Context(), middleware.SessionFrom(c), page, size)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *UserHandler) ByEmail(c fiber.Ctx) error {
	u, err := h.uc.ByEmail(c.Context(), middleware.SessionFrom(c), c.Params("email"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, u)
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), middleware.SessionFrom(c), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "User deleted", nil)
}
