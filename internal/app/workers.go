package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/cardioai/internal/events"
	"github.com/Alijeyrad/cardioai/pkg/constants"
	s3pkg "github.com/Alijeyrad/cardioai/pkg/s3"
)

// WorkerModule registers the NATS event workers of the dashboard process.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

const archiveTimeout = 2 * time.Minute

type WorkerParams struct {
	fx.In

	Lc fx.Lifecycle
	NC *nats.Conn    `optional:"true"`
	S3 *s3pkg.Client `optional:"true"`
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil || p.S3 == nil {
		slog.Debug("export_archiver: disabled", "nats", p.NC != nil, "s3", p.S3 != nil)
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startExportArchiver(p.NC, p.S3)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if sub == nil {
				return nil
			}
			return sub.Unsubscribe()
		},
	})
}

// ---------------------------------------------------------------------------
// export_archiver
// ---------------------------------------------------------------------------

// startExportArchiver copies every CSV export to object storage.
func startExportArchiver(nc *nats.Conn, store *s3pkg.Client) (*nats.Subscription, error) {
	sub, err := nc.Subscribe(constants.SubjectExportCreated, func(msg *nats.Msg) {
		evt, err := events.DecodeExportCreated(msg.Data)
		if err != nil {
			slog.Warn("export_archiver: bad event", "err", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()

		if err := archiveExport(ctx, store, evt.Path); err != nil {
			slog.Warn("export_archiver: upload failed", "file", evt.Path, "err", err)
			return
		}
		slog.Info("export_archiver: archived", "file", evt.Path, "rows", evt.Rows)
	})
	if err != nil {
		slog.Error("export_archiver: subscribe export.created failed", "err", err)
		return nil, err
	}

	slog.Info("export_archiver: started")
	return sub, nil
}

func archiveExport(ctx context.Context, store *s3pkg.Client, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	return store.Upload(ctx, store.Key(filepath.Base(path)), "text/csv", f, info.Size())
}
