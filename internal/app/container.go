package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"kaamwala/internal/config"
	"kaamwala/internal/database"
	"kaamwala/internal/database/migration"
	dbpostgres "kaamwala/internal/database/postgres"
	"kaamwala/internal/infrastructure/cache"
	"kaamwala/internal/infrastructure/marketplace"
	persistence "kaamwala/internal/infrastructure/persistence/postgres"
	"kaamwala/internal/pkg/idgen"
	"kaamwala/internal/pkg/jwt"
	"kaamwala/internal/pkg/validate"
	"kaamwala/internal/session"
)

const janitorInterval = 10 * time.Minute

// Container owns the long-lived dependencies of the gateway.
type Container struct {
	Config      config.Config
	Logger      *log.Logger
	Redis       *cache.Redis
	DB          database.DB
	Sessions    *session.Store
	Marketplace *marketplace.Client
	JWT         jwt.Service
	Validator   *validate.Validator
	SkillIDs    idgen.Generator

	stopJanitor context.CancelFunc
}

// janitor is implemented by session backends that need expired entries swept.
type janitor interface {
	RunJanitor(ctx context.Context, interval time.Duration)
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{
		Config:      cfg,
		Logger:      logger,
		Redis:       cache.NewRedis(cfg.Redis, logger),
		Marketplace: marketplace.NewClient(cfg.Marketplace, logger),
		JWT:         jwt.NewHMACService(cfg.Session.Secret, cfg.App.AppName, sessionTTL(cfg)),
		Validator:   validate.New(),
		SkillIDs:    idgen.NewUUID(),
	}

	backend, err := c.sessionBackend()
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Sessions = session.NewStore(backend, sessionTTL(cfg), logger)
	c.startJanitor(backend)

	logger.Printf("[Container] ready | session_backend=%s redis=%t marketplace=%s",
		cfg.Session.Backend, c.Redis.Available(), c.Marketplace.BaseURL())
	return c, nil
}

func (c *Container) sessionBackend() (session.Backend, error) {
	switch c.Config.Session.Backend {
	case config.SessionBackendRedis:
		if c.Redis.Available() {
			return c.Redis, nil
		}
		c.Logger.Printf("[Container] redis session backend unavailable, falling back to memory")
		return session.NewMemory(), nil
	case config.SessionBackendPostgres:
		return c.postgresBackend()
	default:
		return session.NewMemory(), nil
	}
}

func (c *Container) postgresBackend() (session.Backend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, c.Config.Database)
	if err != nil {
		return nil, fmt.Errorf("connect session database: %w", err)
	}
	c.DB = db

	runner := migration.Runner{FS: migration.Embedded(), Logger: c.Logger}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		return nil, fmt.Errorf("migrate session database: %w", err)
	}

	return persistence.NewSessionRepository(db, c.Logger), nil
}

// startJanitor sweeps expired session entries in the background when the
// backend does not expire keys on its own.
func (c *Container) startJanitor(backend session.Backend) {
	j, ok := backend.(janitor)
	if !ok {
		return
	}
	ctx, stop := context.WithCancel(context.Background())
	c.stopJanitor = stop
	go j.RunJanitor(ctx, janitorInterval)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopJanitor != nil {
		c.stopJanitor()
	}

	var errs []error
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sessionTTL(cfg config.Config) time.Duration {
	if cfg.Session.TTL > 0 {
		return cfg.Session.TTL
	}
	return session.DefaultTTL
}
