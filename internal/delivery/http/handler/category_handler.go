package handler

import (
	"kaamwala/internal/pkg/response"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListActive)
	r.Get("/subcategories", h.ListActiveSubCategories)
	r.Get("/subcategories/:id", h.GetSubCategory)
	r.Get("/:id", h.Get)
}

func (h *CategoryHandler) ListActive(c fiber.Ctx) error {
	items, err := h.uc.ListActive(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *CategoryHandler) ListActiveSubCategories(c fiber.Ctx) error {
	items, err := h.uc.ListActiveSubCategories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *CategoryHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *CategoryHandler) GetSubCategory(c fiber.Ctx) error {
	item, err := h.uc.GetSubCategory(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}
