package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/cardioai/config"
	"github.com/Alijeyrad/cardioai/internal/classifier"
	"github.com/Alijeyrad/cardioai/internal/classifier/remote"
	"github.com/Alijeyrad/cardioai/internal/classifier/tree"
	"github.com/Alijeyrad/cardioai/internal/events"
	"github.com/Alijeyrad/cardioai/pkg/observability"
	redispkg "github.com/Alijeyrad/cardioai/pkg/redis"
	s3pkg "github.com/Alijeyrad/cardioai/pkg/s3"
)

// InfraModule provides all infrastructure dependencies. Optional backends
// resolve to nil when disabled in config.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideS3Client),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvideEventsPublisher),
	fx.Provide(ProvideClassifier),
)

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	rdb, err := redispkg.New(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideS3Client(cfg *config.Config) (*s3pkg.Client, error) {
	if !cfg.S3.Enabled {
		return nil, nil
	}
	return s3pkg.New(cfg.S3)
}

func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if cfg.Nats.URL == "" {
		return nil, nil
	}
	nc, err := nats.Connect(cfg.Nats.URL, nats.Name("cardioai"))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvideEventsPublisher(nc *nats.Conn) *events.Publisher {
	return events.NewPublisher(nc)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

// ProvideClassifier loads the fitted model artifact or points at a remote
// prediction service, depending on model.backend.
func ProvideClassifier(cfg *config.Config) (classifier.Classifier, error) {
	switch strings.ToLower(cfg.Model.Backend) {
	case config.ModelBackendTree:
		m, err := tree.Load(cfg.Model.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", classifier.ErrModelNotLoaded, err)
		}
		slog.Info("model loaded", "path", cfg.Model.Path, "features", m.NumFeatures())
		return m, nil
	case config.ModelBackendRemote:
		return remote.New(remote.Config{
			BaseURL:     cfg.Model.Remote.URL,
			Timeout:     time.Duration(cfg.Model.Remote.TimeoutSeconds) * time.Second,
			NumFeatures: cfg.Model.ExpectedFeatures,
		}), nil
	default:
		return nil, fmt.Errorf("unknown model backend %q", cfg.Model.Backend)
	}
}
