package app

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"kaamwala/internal/config"
	"kaamwala/internal/delivery/http/handler"
	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/delivery/http/routes"
	v1 "kaamwala/internal/delivery/http/routes/v1"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// bodyLimit leaves room for a maximum-size image plus the other form fields.
const bodyLimit = usecase.MaxImageSize + 1<<20

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: bodyLimit,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(cors.New(corsConfig(c.Config.App.CORSAllowOrigins)))
	app.Use(middleware.NewSessionMiddleware(c.JWT, c.Sessions, middleware.SessionOptions{
		CookieName:   c.Config.Session.CookieName,
		CookieSecure: c.Config.Session.CookieSecure,
		TTL:          c.Config.Session.TTL,
	}, c.Logger).Middleware())
}

// corsConfig allows credentials only for an explicit origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID", middleware.HeaderSession},
		ExposeHeaders: []string{"X-Request-ID", middleware.HeaderSession},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowOrigins = []string{"*"}
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	mp := c.Marketplace
	v := c.Validator

	deps := map[string]handler.Pinger{"redis": c.Redis}
	if c.DB != nil {
		deps["database"] = c.DB
	}

	registry := routes.NewRegistry(handler.NewHealthHandler(deps), v1.Handlers{
		Auth: handler.NewAuthHandler(
			usecase.NewAuthUsecase(mp, v, c.Logger),
			usecase.NewRegistrationUsecase(mp, mp, v, c.SkillIDs, c.Logger),
		),
		Category:  handler.NewCategoryHandler(usecase.NewCategoryUsecase(mp, c.Redis, c.Config.Redis.TTL, c.Logger)),
		Worker:    handler.NewWorkerHandler(usecase.NewWorkerSearchUsecase(mp, c.Logger)),
		Profile:   handler.NewProfileHandler(usecase.NewProfileUsecase(mp, v, c.SkillIDs, c.Logger)),
		UserSkill: handler.NewUserSkillHandler(usecase.NewUserSkillUsecase(mp, v, c.SkillIDs)),
		User:      handler.NewUserHandler(usecase.NewUsersUsecase(mp)),
		Contact:   handler.NewContactHandler(usecase.NewContactUsecase(mp, v, c.Logger)),
	})
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
