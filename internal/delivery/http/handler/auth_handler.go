package handler

import (
	"encoding/json"

	"kaamwala/internal/delivery/http/dto"
	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/domain/user"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/pkg/response"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	auth         usecase.AuthUsecase
	registration usecase.RegistrationUsecase
}

type registerSkills struct {
	Skills []string `json:"skills"`
}

func NewAuthHandler(auth usecase.AuthUsecase, registration usecase.RegistrationUsecase) *AuthHandler {
	return &AuthHandler{auth: auth, registration: registration}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
	r.Get("/session", h.Session)
	r.Post("/forgot-password", h.ForgotPassword)
}

// Register accepts either a JSON body or a multipart form carrying the
// profile image under userImage.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var form user.RegistrationForm
	if err := c.Bind().Body(&form); err != nil {
		return badRequest(err)
	}

	in := usecase.RegisterInput{Form: form}
	if isMultipart(c) {
		skills, err := formValues(c, "skills")
		if err != nil {
			return badRequest(err)
		}
		img, err := imageFromForm(c, marketplace.ImageField)
		if err != nil {
			return imageError(err)
		}
		in.Skills = skills
		in.Image = img
	} else if isJSON(c) {
		var body registerSkills
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return badRequest(err)
		}
		in.Skills = body.Skills
	}

	res, err := h.registration.Register(c.Context(), middleware.SessionFrom(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Registration successful", dto.NewRegisterResponse(res))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req usecase.LoginInput
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	u, err := h.auth.Login(c.Context(), middleware.SessionFrom(c), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Login successful", dto.NewAuthResponse(true, &u))
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), middleware.SessionFrom(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Logged out", dto.NewAuthResponse(false, nil))
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	u, ok, err := h.auth.Me(c.Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, loginRedirect(), nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthResponse(true, &u))
}

// Session reports the locally stored sign-in state without calling the
// backend.
func (h *AuthHandler) Session(c fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	if !h.auth.IsAuthenticated(c.Context(), sess) {
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthResponse(false, nil))
	}
	u, ok, err := h.auth.StoredUser(c.Context(), sess)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthResponse(true, nil))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAuthResponse(true, &u))
}

func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	var req usecase.ForgotPasswordInput
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	msg, err := h.auth.ForgotPassword(c.Context(), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, msg, nil)
}
