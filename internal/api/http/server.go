package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/cardioai/config"
	"github.com/Alijeyrad/cardioai/internal/api/http/middleware"
	"github.com/Alijeyrad/cardioai/pkg/observability"
)

// Module provides the HTTP server to the fx graph. The process supplies a
// Listener and a Registrar.
var Module = fx.Module("http", fx.Provide(NewServer))

// Registrar mounts a process's routes.
type Registrar interface {
	Register(app *fiber.App)
}

// Listener names the process and the port it serves on.
type Listener struct {
	Name string
	Port int
}

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Listener  Listener
	Routes    Registrar
	Redis     *redis.Client           `optional:"true"`
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	app := New(p.Cfg, p.Listener.Name, p.Redis, p.OTel != nil)
	p.Routes.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Listener.Port)
			go func() {
				if err := app.Listen(addr); err != nil {
					slog.Error("HTTP server error", "server", p.Listener.Name, "error", err)
				}
			}()
			slog.Info("HTTP server listening", "server", p.Listener.Name, "addr", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

// New builds a fiber app with the global middleware stack and no routes.
func New(cfg *config.Config, name string, rdb *redis.Client, tracing bool) *fiber.App {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	app := fiber.New(fiber.Config{
		AppName:      name,
		BodyLimit:    cfg.Server.BodyLimitKB * 1024,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	if tracing && cfg.Observability.Tracing.Enabled {
		app.Use(observability.FiberMiddleware(cfg.Observability.ServiceName))
	}

	configureGlobalMiddleware(app, cfg, rdb)
	return app
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config, rdb *redis.Client) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New())
		if cfg.Server.CORS.Enabled {
			app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORS.AllowOrigins}))
		}
		app.Use(middleware.NewLimiter(rdb))
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:request_id}] ${method} ${url} ${status}\n",
	}))
}
