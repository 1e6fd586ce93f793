package v1

import (
	"kaamwala/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers are the v1 route handlers. Nil handlers leave their group
// unmounted.
type Handlers struct {
	Auth      *handler.AuthHandler
	Category  *handler.CategoryHandler
	Worker    *handler.WorkerHandler
	Profile   *handler.ProfileHandler
	UserSkill *handler.UserSkillHandler
	User      *handler.UserHandler
	Contact   *handler.ContactHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Category != nil {
		h.Category.RegisterRoutes(r.Group("/categories"))
	}
	if h.Worker != nil {
		h.Worker.RegisterRoutes(r.Group("/workers"))
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r.Group("/profile"))
	}

	users := r.Group("/users")
	if h.UserSkill != nil {
		h.UserSkill.RegisterUserRoutes(users)
		h.UserSkill.RegisterRoutes(r.Group("/skills"))
	}
	if h.User != nil {
		h.User.RegisterRoutes(users)
	}

	if h.Contact != nil {
		h.Contact.RegisterRoutes(r.Group("/contact"))
	}
}
