package logs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/grafana/loki-client-go/loki"
	slogloki "github.com/samber/slog-loki/v3"

	"github.com/Alijeyrad/cardioai/config"
)

const lokiPushPath = "/loki/api/v1/push"

// newLokiHandler pushes records to Loki's push API through the batching loki client.
func newLokiHandler(cfg *config.Config, level slog.Level) (slog.Handler, func(), error) {
	lokiCfg, err := loki.NewDefaultConfig(lokiPushURL(cfg.Logging.Output.Loki.Endpoint))
	if err != nil {
		return nil, nil, fmt.Errorf("loki config: %w", err)
	}
	lokiCfg.TenantID = cfg.Logging.Output.Loki.TenantID

	client, err := loki.New(lokiCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("loki client: %w", err)
	}

	h := slogloki.Option{
		Level:  level,
		Client: client,
	}.NewLokiHandler()

	return h, client.Stop, nil
}

func lokiPushURL(endpoint string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	if strings.HasSuffix(endpoint, lokiPushPath) {
		return endpoint
	}
	return endpoint + lokiPushPath
}
