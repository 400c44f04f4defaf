package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/farhanyp/woordenlijst"
	wlhttp "github.com/farhanyp/woordenlijst/http"
)

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct.
type Config struct {
	Server  ServerConfig      `mapstructure:"server"`
	Storage StorageConfig     `mapstructure:"storage"`
	CORS    wlhttp.CORSConfig `mapstructure:"cors"`
	Log     LogConfig         `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           int `mapstructure:"port" validate:"required,min=1,max=65535"`
	RequestTimeout int `mapstructure:"request_timeout" validate:"min=0"`
}

// StorageConfig selects and configures the slot's backend.
type StorageConfig struct {
	Backend string              `mapstructure:"backend" validate:"required,oneof=local remote"`
	Local   LocalStorageConfig  `mapstructure:"local"`
	Remote  RemoteStorageConfig `mapstructure:"remote"`
}

// LocalStorageConfig holds the local filesystem backend settings.
type LocalStorageConfig struct {
	Path     string `mapstructure:"path" validate:"required"`
	FileName string `mapstructure:"file_name" validate:"required"`
}

// RemoteStorageConfig holds the remote object storage settings.
// Credentials live here so the store never reads ambient process state.
type RemoteStorageConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	Bucket        string `mapstructure:"bucket"`
	Folder        string `mapstructure:"folder"`
	ObjectName    string `mapstructure:"object_name"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// Backend returns the parsed storage backend selector.
func (c *Config) Backend() (woordenlijst.StorageBackend, error) {
	return woordenlijst.ParseStorageBackend(c.Storage.Backend)
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"backend":      "storage.backend",
	"storage-path": "storage.local.path",
	"port":         "server.port",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// Use custom mapping if it exists, otherwise use flag name as-is
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8572)
	v.SetDefault("server.request_timeout", 30) // seconds

	v.SetDefault("storage.backend", "local")

	v.SetDefault("storage.local.path", "./uploads")
	v.SetDefault("storage.local.file_name", "upload.txt")

	v.SetDefault("storage.remote.endpoint", "localhost:9000")
	v.SetDefault("storage.remote.use_ssl", false)
	v.SetDefault("storage.remote.bucket", "woordenlijst")
	v.SetDefault("storage.remote.folder", "text-files")
	v.SetDefault("storage.remote.object_name", "spelling-info")
	v.SetDefault("storage.remote.public_base_url", "http://localhost:9000/woordenlijst")

	v.SetDefault("cors.enabled", false)

	v.SetDefault("log.level", "info")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix("WOORDENLIJST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if !woordenlijst.IsValidSlotName(cfg.Storage.Local.FileName) {
		return nil, fmt.Errorf("validate config: invalid storage.local.file_name: %q", cfg.Storage.Local.FileName)
	}

	return &cfg, nil
}
