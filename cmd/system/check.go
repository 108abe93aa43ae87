package system

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/cardioai/config"
	"github.com/Alijeyrad/cardioai/internal/app"
	"github.com/Alijeyrad/cardioai/internal/features"
	"github.com/Alijeyrad/cardioai/internal/fields"
	"github.com/Alijeyrad/cardioai/internal/service/prediction"
)

func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the field configuration, model and reference dataset",
		Long: `Load every artifact the servers depend on and report mismatches
between them without starting a server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(cfgPath)
			if err != nil {
				return err
			}

			if err := runChecks(cfg); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "all checks passed")
			return nil
		},
	}

	return cmd
}

func runChecks(cfg *config.Config) error {
	fcfg, err := fields.Load(cfg.Dashboard.FieldsPath)
	if err != nil {
		return err
	}

	clf, err := app.ProvideClassifier(cfg)
	if err != nil {
		return err
	}

	var errs []error

	n := clf.NumFeatures()
	if n < prediction.MinFeatures || n > prediction.MaxFeatures {
		errs = append(errs, fmt.Errorf("model expects %d features, the prediction API accepts %d to %d",
			n, prediction.MinFeatures, prediction.MaxFeatures))
	}

	table, err := app.ProvideFeatureTable(fcfg, clf)
	if err != nil {
		errs = append(errs, err)
	}

	ref, err := features.LoadReference(cfg.Dashboard.ReferencePath)
	if err != nil {
		errs = append(errs, err)
	} else if table != nil {
		for _, name := range table.Names() {
			if _, err := ref.Bounds(name); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}
