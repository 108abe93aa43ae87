package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/Alijeyrad/cardioai/pkg/constants"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.body_limit_kb", 4096)

	v.SetDefault("dashboard.port", 8050)
	v.SetDefault("dashboard.fields_path", "configs/fields.json")
	v.SetDefault("dashboard.reference_path", "datasets/knn_zero_day_data.csv")
	v.SetDefault("dashboard.export_dir", "uploading")

	v.SetDefault("model.backend", ModelBackendTree)
	v.SetDefault("model.path", "models/miokard_dt_v1.json")
	v.SetDefault("model.expected_features", 107)
	v.SetDefault("model.remote.timeout_seconds", 10)

	v.SetDefault("observability.service_name", constants.ServiceName)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output.stdout", true)
}

// ReadConfig loads configPath, which is either a YAML file or a directory
// searched for config.yaml.
func ReadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if info, err := os.Stat(configPath); err == nil && info.IsDir() {
		v.SetConfigName(constants.ConfigName)
		v.AddConfigPath(configPath)
	} else {
		v.SetConfigFile(configPath)
	}
	v.SetConfigType(constants.ConfigFormat)

	// e.g. CARDIOAI_MODEL_PATH overrides model.path
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvs(v, reflect.TypeOf(Config{}), ""); err != nil {
		return nil, err
	}

	// A missing file is fine: defaults plus env vars are a complete config.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// bindEnvs registers every mapstructure key so AutomaticEnv sees keys that
// have neither a default nor a file value.
func bindEnvs(v *viper.Viper, t reflect.Type, prefix string) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := f.Tag.Get("mapstructure")
		if key == "" || key == "-" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		if f.Type.Kind() == reflect.Struct {
			if err := bindEnvs(v, f.Type, key); err != nil {
				return err
			}
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	return config
}
