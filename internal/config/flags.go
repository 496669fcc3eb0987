package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagShaders  = flag.String("shaders", "", "Directory containing GLSL sources (default: embedded)")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")
	flagWarnOnly = flag.Bool("warn-only", false, "Report audit findings without failing")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagShaders != "" {
		cfg.Shaders.Directory = *flagShaders
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWarnOnly {
		cfg.Shaders.FailOnFindings = false
	}
}
