package configs

import (
	"errors"
	"fmt"
	"strings"

	"loghours/internal/shared/validators"

	"github.com/spf13/viper"
)

const (
	defaultLogLevel        = "info"
	defaultRegistryPath    = "/etc/userdatadomains"
	defaultLogsDirTemplate = "/home/{user}/logs/"
)

// LoadConfig reads configuration and validates it. With an empty
// configPath the usual locations are searched (./configs,
// /etc/loghours) and a missing file is fine: the defaults describe the
// standard deployment. A non-empty configPath must name an existing
// file. LOGHOURS_* environment variables override either source.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("configs")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/loghours")
	}

	v.SetEnvPrefix("LOGHOURS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("registry.path", defaultRegistryPath)
	v.SetDefault("access_logs.dir_template", defaultLogsDirTemplate)
	v.SetDefault("metrics.textfile_path", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "registry.path")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Registry.Path" -> "registry.path")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
