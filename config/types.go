package config

import (
	"errors"
	"fmt"
	"strings"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Dashboard     DashboardConfig     `mapstructure:"dashboard"`
	Model         ModelConfig         `mapstructure:"model"`
	Redis         RedisConfig         `mapstructure:"redis"`
	S3            S3Config            `mapstructure:"s3"`
	Nats          NatsConfig          `mapstructure:"nats"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type NatsConfig struct {
	// URL left empty disables event publishing and the export archive worker.
	URL string `mapstructure:"url" yaml:"url"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	BodyLimitKB    int        `mapstructure:"body_limit_kb"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DashboardConfig configures the registry process.
type DashboardConfig struct {
	Port             int    `mapstructure:"port"`
	FieldsPath       string `mapstructure:"fields_path"`    // field defaults and groups, JSON
	ReferencePath    string `mapstructure:"reference_path"` // normalization bounds, CSV
	ExportDir        string `mapstructure:"export_dir"`
	ExportOnShutdown bool   `mapstructure:"export_on_shutdown"`
}

const (
	ModelBackendTree   = "tree"
	ModelBackendRemote = "remote"
)

type ModelConfig struct {
	Backend string `mapstructure:"backend"` // tree, remote
	Path    string `mapstructure:"path"`
	// ExpectedFeatures is the feature count checked against the feature table.
	// The tree backend reports its own count and overrides this.
	ExpectedFeatures int               `mapstructure:"expected_features"`
	Remote           RemoteModelConfig `mapstructure:"remote"`
}

type RemoteModelConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type RedisConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/cardioai.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	TenantID string `mapstructure:"tenant_id"`
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}
	if c.Dashboard.Port <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.port must be positive, got %d", c.Dashboard.Port))
	}

	switch strings.ToLower(c.Model.Backend) {
	case ModelBackendTree:
		if c.Model.Path == "" {
			errs = append(errs, errors.New("model.path is required for the tree backend"))
		}
	case ModelBackendRemote:
		if c.Model.Remote.URL == "" {
			errs = append(errs, errors.New("model.remote.url is required for the remote backend"))
		}
		if c.Model.ExpectedFeatures <= 0 {
			errs = append(errs, errors.New("model.expected_features is required for the remote backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown model.backend %q", c.Model.Backend))
	}

	if c.S3.Enabled && c.S3.Bucket == "" {
		errs = append(errs, errors.New("s3.bucket is required when s3 is enabled"))
	}

	return errors.Join(errs...)
}
