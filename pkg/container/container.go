package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookapp-backend/internal/config"
	infraCache "bookapp-backend/internal/infrastructure/cache"
	"bookapp-backend/internal/infrastructure/database"
	"bookapp-backend/internal/shared/middleware"
	"bookapp-backend/internal/shared/session"
	"bookapp-backend/pkg/cache"
	"bookapp-backend/pkg/token"

	"bookapp-backend/internal/domains/book"
	bookHandler "bookapp-backend/internal/domains/book/handler"
	bookRepo "bookapp-backend/internal/domains/book/repository"
	bookService "bookapp-backend/internal/domains/book/service"
	"bookapp-backend/internal/domains/user"
	userHandler "bookapp-backend/internal/domains/user/handler"
	userRepo "bookapp-backend/internal/domains/user/repository"
	userService "bookapp-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Nothing reaches for a
// global handle; everything is constructed here and injected downward.
type Container struct {
	// Infrastructure
	Config   *config.Config
	DB       *database.PostgresDB
	Cache    cache.Cache
	Sessions *session.Store
	Tokens   *token.Manager
	Auth     middleware.AuthConfig

	// Repositories
	UserRepo user.Repository
	BookRepo book.Repository

	// Services
	UserService user.Service
	BookService book.Service

	// Handlers
	AuthHandler *userHandler.AuthHandler
	BookHandler *bookHandler.BookHandler
}

// NewContainer initializes the whole dependency graph, in order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Database
	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis: sessions live here, so unlike a pure cache this connection
	// is required.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache

	// Sessions and remember-me tokens
	c.Sessions = session.NewStore(c.Cache, cfg.Session.TTL)
	c.Tokens = token.NewManager(cfg.Session.Secret, cfg.Session.RememberTTL)
	c.Auth = middleware.AuthConfig{
		Sessions:     c.Sessions,
		Tokens:       c.Tokens,
		CookieSecure: cfg.Session.CookieSecure,
	}

	// Repositories
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	// Services
	c.UserService = userService.NewUserService(c.UserRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)

	// Handlers
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService, c.Auth)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	return c, nil
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
}
