package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/Alijeyrad/cardioai/config"
	"github.com/Alijeyrad/cardioai/internal/classifier"
	"github.com/Alijeyrad/cardioai/internal/events"
	"github.com/Alijeyrad/cardioai/internal/features"
	"github.com/Alijeyrad/cardioai/internal/fields"
	"github.com/Alijeyrad/cardioai/internal/registry"
	"github.com/Alijeyrad/cardioai/internal/service/forecast"
	"github.com/Alijeyrad/cardioai/internal/service/patient"
	"github.com/Alijeyrad/cardioai/internal/service/prediction"
)

// ServiceModule provides all domain services. fx builds only what a process
// asks for, so the prediction server never loads the field configuration.
var ServiceModule = fx.Module("services",
	fx.Provide(ProvideFields),
	fx.Provide(ProvideFeatureTable),
	fx.Provide(ProvideRegistry),
	fx.Provide(ProvidePatientService),
	fx.Provide(ProvideForecastService),
	fx.Provide(ProvidePredictionService),
)

func ProvideFields(cfg *config.Config) (*fields.Config, error) {
	return fields.Load(cfg.Dashboard.FieldsPath)
}

// ProvideFeatureTable fails startup when the table does not line up with the
// field configuration or the model.
func ProvideFeatureTable(fcfg *fields.Config, clf classifier.Classifier) (*features.Table, error) {
	table, err := features.NewTable(features.Miokard())
	if err != nil {
		return nil, err
	}
	if err := table.Check(fcfg, clf.NumFeatures()); err != nil {
		return nil, err
	}
	return table, nil
}

// ProvideRegistry holds the session's records. With export_on_shutdown set,
// whatever was entered is written to the export directory on stop.
func ProvideRegistry(lc fx.Lifecycle, cfg *config.Config, fcfg *fields.Config) *registry.Registry {
	reg := registry.New(fcfg)
	if cfg.Dashboard.ExportOnShutdown {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				path, err := reg.Export(cfg.Dashboard.ExportDir, time.Now())
				switch {
				case errors.Is(err, registry.ErrEmpty):
					return nil
				case err != nil:
					return err
				}
				slog.Info("registry exported on shutdown", "file", path, "rows", reg.Len())
				return nil
			},
		})
	}
	return reg
}

func ProvidePatientService(cfg *config.Config, reg *registry.Registry, pub *events.Publisher) patient.Service {
	return patient.New(reg, pub, cfg.Dashboard.ExportDir, nil)
}

func ProvideForecastService(
	cfg *config.Config,
	reg *registry.Registry,
	table *features.Table,
	clf classifier.Classifier,
) forecast.Service {
	return forecast.New(forecast.Params{
		Registry:      reg,
		Table:         table,
		Classifier:    clf,
		ReferencePath: cfg.Dashboard.ReferencePath,
	})
}

func ProvidePredictionService(clf classifier.Classifier) prediction.Service {
	return prediction.New(clf)
}
