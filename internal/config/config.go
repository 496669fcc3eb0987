// Package config handles tool configuration loading and management.
package config

// Config holds all settings of the shader standard tooling.
type Config struct {
	Shaders ShadersConfig `yaml:"shaders"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShadersConfig says where GLSL sources are read from and how strictly
// they are checked against the catalog.
type ShadersConfig struct {
	// Directory holds the .vert/.frag files. Empty means the sources
	// embedded in the binary.
	Directory string `yaml:"directory"`
	// FailOnFindings makes validate exit non-zero when the audit finds problems.
	FailOnFindings bool `yaml:"fail_on_findings"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Shaders: ShadersConfig{
			Directory:      "",
			FailOnFindings: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
