package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagOrder   = flag.String("order", "", "Default Euler order (XYZ, YZX, ZXY, XZY, YXZ, ZYX)")
	flagStrict  = flag.Bool("strict", false, "Fail on singular matrix inversion")
	flagLogFile = flag.String("log-file", "", "Write logs to this file as well")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagOrder != "" {
		cfg.Scene.EulerOrder = *flagOrder
	}
	if *flagStrict {
		cfg.Scene.StrictInverse = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
