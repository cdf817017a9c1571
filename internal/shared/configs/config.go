package configs

// Config holds all configuration for the tool. Paths below are
// deployment conventions; the defaults match a stock shared-hosting
// layout and a config file is only needed to override them.
type Config struct {
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	Registry   RegistryConfig   `mapstructure:"registry" validate:"required"`
	AccessLogs AccessLogsConfig `mapstructure:"access_logs" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// RegistryConfig locates the system domain registry.
type RegistryConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AccessLogsConfig describes where per-domain access logs live.
// DirTemplate must contain the "{user}" placeholder, replaced with the
// account owner of each domain.
type AccessLogsConfig struct {
	DirTemplate string `mapstructure:"dir_template" validate:"required"`
}

// MetricsConfig controls the optional end-of-run metrics export.
// When TextfilePath is empty no file is written.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}
