package handler

import (
	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/domain/user"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/pkg/response"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id", h.View)
	r.Put("/:id", h.Complete)
	r.Post("/:id/image", h.UploadImage)
}

func (h *ProfileHandler) View(c fiber.Ctx) error {
	view, err := h.uc.View(c.Context(), middleware.SessionFrom(c), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}

func (h *ProfileHandler) Complete(c fiber.Ctx) error {
	var edit user.ProfileEdit
	if err := c.Bind().Body(&edit); err != nil {
		return badRequest(err)
	}

	view, err := h.uc.Complete(c.Context(), middleware.SessionFrom(c), c.Params("id"), edit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", view)
}

func (h *ProfileHandler) UploadImage(c fiber.Ctx) error {
	if !isMultipart(c) {
		return badRequest(nil)
	}
	img, err := imageFromForm(c, marketplace.ImageField)
	if err != nil {
		return imageError(err)
	}
	if img == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "userImage is required", nil, nil)
	}

	if err := h.uc.UploadImage(c.Context(), middleware.SessionFrom(c), c.Params("id"), *img); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile image updated", nil)
}
