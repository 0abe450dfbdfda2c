package config

// EnvConfig locates the configuration. It is read from the environment only.
type EnvConfig struct {
	ConfigFile string `env:"ESLDUMP_CONFIG_FILE" validate:"omitempty,filepath"`
	// Optional: raw configuration content (YAML or JSON). If set, it takes precedence over ConfigFile.
	ConfigContent string `env:"ESLDUMP_CONFIG_CONTENT" validate:"omitempty"`
	// Optional: explicit format of ConfigContent. One of: yaml, yml, json.
	ConfigFormat string `env:"ESLDUMP_CONFIG_FORMAT" validate:"omitempty,oneof=yaml yml json"`
}

// Config holds the esldump settings.
type Config struct {
	// Output format of decoded events.
	Format string `yaml:"format" default:"text" validate:"oneof=text json pretty yaml cbor"`
	// Decode with warnings instead of failing on malformed events.
	Lenient bool `yaml:"lenient"`
	// Colorize text output and logs.
	Color bool `yaml:"color" default:"true"`
	// Minimum log level.
	LogLevel string `yaml:"log_level" default:"info" validate:"oneof=debug info warn error"`
	// Largest accepted frame in bytes, 0 for no limit.
	MaxFrameSize int64 `yaml:"max_frame_size" default:"16777216" validate:"gte=0"`
}
