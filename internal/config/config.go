// Package config handles gltftool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Tool    ToolConfig    `yaml:"tool"`
	Logging LoggingConfig `yaml:"logging"`
}

// ToolConfig holds parsing and output settings.
type ToolConfig struct {
	// Scale multiplies node scales and becomes the default scale of
	// nodes without a transform.
	Scale float32 `yaml:"scale"`
	// DumpPrecision is the number of decimals printed for floats.
	DumpPrecision int `yaml:"dump_precision"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Tool: ToolConfig{
			Scale:         1.0,
			DumpPrecision: 3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
