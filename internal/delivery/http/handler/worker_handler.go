package handler

import (
	"kaamwala/internal/delivery/http/dto"
	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/pkg/response"
	"kaamwala/internal/search"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type WorkerHandler struct {
	uc usecase.WorkerSearchUsecase
}

func NewWorkerHandler(uc usecase.WorkerSearchUsecase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

func (h *WorkerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
	r.Get("/suggestions", h.Suggestions)
	r.Get("/skill/:id", h.BySkill)
}

// Search reads the filters straight from the query string, so a shared
// search URL reproduces the same results.
func (h *WorkerHandler) Search(c fiber.Ctx) error {
	filters, err := search.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return badRequest(err)
	}
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Search(c.Context(), middleware.SessionFrom(c), filters, page)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerSearchResponse(res))
}

func (h *WorkerHandler) BySkill(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.BySkill(c.Context(), middleware.SessionFrom(c), c.Params("id"), page)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerSearchResponse(res))
}

func (h *WorkerHandler) Suggestions(c fiber.Ctx) error {
	out, err := h.uc.Suggestions(c.Context(), middleware.SessionFrom(c), c.Query("query"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
