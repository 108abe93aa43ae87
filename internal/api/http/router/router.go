package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Alijeyrad/cardioai/config"
)

// registerSystemRoutes mounts the probes and, when enabled, the Prometheus
// scrape endpoint. ready may be nil.
func registerSystemRoutes(app *fiber.App, cfg *config.Config, ready func() bool) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	readiness := healthcheck.Config{}
	if ready != nil {
		readiness.Probe = func(c fiber.Ctx) bool { return ready() }
	}
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(readiness))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if cfg.Observability.Enabled && cfg.Observability.Metrics.Enabled {
		path := cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
